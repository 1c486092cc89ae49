package glib

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const defaultBatchCap = 256

// Batch is a buffering draw-submission context. Open it with Begin, submit
// sprites and strings, then close it with End to flush the buffered quads to
// the target in as few draw calls as possible.
//
// Consecutive submissions that share a source image are coalesced into a
// single DrawTriangles32 call. The batch is exclusively owned by whichever
// component currently has it open; nesting is the caller's responsibility.
type Batch struct {
	target *ebiten.Image
	src    *ebiten.Image // source image of the current coalesced run
	verts  []ebiten.Vertex
	inds   []uint32
	open   bool
}

// NewBatch creates a batch with preallocated vertex buffers.
func NewBatch() *Batch {
	return &Batch{
		verts: make([]ebiten.Vertex, 0, defaultBatchCap*4),
		inds:  make([]uint32, 0, defaultBatchCap*6),
	}
}

// Begin opens the batch for submissions onto target.
// Panics if the batch is already open or target is nil.
func (b *Batch) Begin(target *ebiten.Image) {
	if b.open {
		panic("glib: Begin on an open batch")
	}
	if target == nil {
		panic("glib: Begin with nil target")
	}
	b.target = target
	b.open = true
}

// End flushes all buffered submissions and closes the batch.
// Panics if the batch is not open.
func (b *Batch) End() {
	if !b.open {
		panic("glib: End on a closed batch")
	}
	b.flush()
	b.target = nil
	b.src = nil
	b.open = false
}

// IsOpen reports whether the batch is between Begin and End.
func (b *Batch) IsOpen() bool {
	return b.open
}

// DrawImage submits img under the given transform and tint. A nil img draws
// the shared 1x1 white pixel, which combined with scale yields solid-color
// rectangles. Panics if the batch is not open.
func (b *Batch) DrawImage(img *ebiten.Image, transform [6]float64, clr Color) {
	if img == nil {
		img = WhitePixel
	}
	b.drawRegion(img, img.Bounds(), transform, clr)
}

// DrawString submits the text s under the given transform and tint using f.
//
// GridFont text is submitted glyph by glyph and coalesces with surrounding
// sprite submissions from the same sheet. TTFFont text is rendered directly
// by Ebitengine's text/v2 and interrupts the current coalesced run.
// Measurement-only fonts produce no output. Panics if the batch is not open.
func (b *Batch) DrawString(f Font, s string, transform [6]float64, clr Color) {
	if !b.open {
		panic("glib: DrawString on a closed batch")
	}
	if f == nil || s == "" {
		return
	}

	switch f := f.(type) {
	case *GridFont:
		advance := 0.0
		for _, r := range s {
			rect, ok := f.glyphRect(r)
			if ok {
				b.drawRegion(f.sheet, rect, translateTransform(transform, advance, 0), clr)
			}
			advance += f.advance
		}

	case *TTFFont:
		b.flush()
		b.src = nil
		op := &text.DrawOptions{}
		op.GeoM.Concat(transformGeoM(transform))
		op.ColorScale.Scale(float32(clr.R), float32(clr.G), float32(clr.B), float32(clr.A))
		op.LineSpacing = f.lh
		text.Draw(b.target, s, f.face, op)
	}
}

// drawRegion appends a quad for the given pixel region of img. Starts a new
// coalesced run when the source image changes.
func (b *Batch) drawRegion(img *ebiten.Image, rect image.Rectangle, transform [6]float64, clr Color) {
	if !b.open {
		panic("glib: draw on a closed batch")
	}
	if img != b.src {
		b.flush()
		b.src = img
	}

	w := float64(rect.Dx())
	h := float64(rect.Dy())
	a, bb, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]

	// 4 local positions: TL, TR, BL, BR.
	lx := [4]float64{0, w, 0, w}
	ly := [4]float64{0, 0, h, h}

	// Source UVs in the image's own pixel coordinates.
	sx0, sy0 := float32(rect.Min.X), float32(rect.Min.Y)
	sx1, sy1 := float32(rect.Max.X), float32(rect.Max.Y)
	sx := [4]float32{sx0, sx1, sx0, sx1}
	sy := [4]float32{sy0, sy0, sy1, sy1}

	// Premultiplied RGBA.
	ca := float32(clr.A)
	cr := float32(clr.R) * ca
	cg := float32(clr.G) * ca
	cb := float32(clr.B) * ca

	base := uint32(len(b.verts))
	for i := 0; i < 4; i++ {
		b.verts = append(b.verts, ebiten.Vertex{
			DstX:   float32(a*lx[i] + c*ly[i] + tx),
			DstY:   float32(bb*lx[i] + d*ly[i] + ty),
			SrcX:   sx[i],
			SrcY:   sy[i],
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}

	// Two triangles: TL-TR-BL, TR-BR-BL.
	b.inds = append(b.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// flush submits the accumulated run as a single DrawTriangles32 call.
func (b *Batch) flush() {
	if len(b.verts) == 0 || b.src == nil {
		b.verts = b.verts[:0]
		b.inds = b.inds[:0]
		return
	}

	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	b.target.DrawTriangles32(b.verts, b.inds, b.src, &op)

	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}
