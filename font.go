package glib

import (
	"bytes"
	"fmt"
	"image"
	"sync"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the interface for text measurement. Rendering is handled by
// Batch.DrawString, which recognizes the concrete font types it knows how to
// submit; unknown implementations are measurement-only.
type Font interface {
	MeasureString(s string) (width, height float64)
	LineHeight() float64
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("glib: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 use.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

const defaultFontSize = 16

var (
	defaultFontOnce sync.Once
	defaultFont     *TTFFont
	defaultFontErr  error
)

// DefaultFont returns a shared Go Regular face at size 16, loading it on
// first use. Widgets work out of the box without asset loading.
func DefaultFont() (*TTFFont, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = LoadTTFFont(goregular.TTF, defaultFontSize)
	})
	return defaultFont, defaultFontErr
}

// --- GridFont ---

// GridFont renders text from a fixed-cell glyph sheet: every glyph occupies
// an identical cellW x cellH region, laid out left to right, top to bottom,
// in charset order. Metrics are exact and allocation-free, which makes it
// the font of choice for width-budgeted widgets.
type GridFont struct {
	sheet   *ebiten.Image
	cellW   int
	cellH   int
	cols    int
	advance float64
	index   map[rune]int
}

// NewGridFont creates a GridFont from a glyph sheet. charset lists the runes
// in sheet order. The glyph advance defaults to the cell width.
// Panics if sheet is nil, the cell size is not positive, or charset is empty.
func NewGridFont(sheet *ebiten.Image, cellW, cellH int, charset string) *GridFont {
	if sheet == nil {
		panic("glib: NewGridFont with nil sheet")
	}
	if cellW <= 0 || cellH <= 0 {
		panic("glib: NewGridFont cell size must be positive")
	}
	if charset == "" {
		panic("glib: NewGridFont with empty charset")
	}

	index := make(map[rune]int, utf8.RuneCountInString(charset))
	i := 0
	for _, r := range charset {
		if _, dup := index[r]; !dup {
			index[r] = i
		}
		i++
	}

	cols := sheet.Bounds().Dx() / cellW
	if cols < 1 {
		cols = 1
	}

	return &GridFont{
		sheet:   sheet,
		cellW:   cellW,
		cellH:   cellH,
		cols:    cols,
		advance: float64(cellW),
		index:   index,
	}
}

// SetAdvance overrides the horizontal advance between glyphs.
func (f *GridFont) SetAdvance(advance float64) {
	f.advance = advance
}

// MeasureString returns the width and height of the rendered text.
// GridFont text is single-line; newlines measure like ordinary glyphs.
func (f *GridFont) MeasureString(s string) (width, height float64) {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0, 0
	}
	return float64(n) * f.advance, float64(f.cellH)
}

// LineHeight returns the cell height.
func (f *GridFont) LineHeight() float64 {
	return float64(f.cellH)
}

// glyphRect returns the sheet region for r, or false if r is not in the
// charset. Unknown runes still consume an advance so masking characters
// and spacing stay aligned.
func (f *GridFont) glyphRect(r rune) (image.Rectangle, bool) {
	i, ok := f.index[r]
	if !ok {
		return image.Rectangle{}, false
	}
	min := f.sheet.Bounds().Min
	x := min.X + (i%f.cols)*f.cellW
	y := min.Y + (i/f.cols)*f.cellH
	return image.Rect(x, y, x+f.cellW, y+f.cellH), true
}
