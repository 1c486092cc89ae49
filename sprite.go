package glib

import "github.com/hajimehoshi/ebiten/v2"

// Attachment tracks the owning Collection of a member. Embed it to get the
// owner back-reference that Collection.Add assigns; a member can then call
// RemoveSelf on its owner during an update pass.
type Attachment struct {
	owner *Collection
}

// SetOwner records the owning collection. Called by Collection.Add and
// cleared (with nil) by the remove operations.
func (a *Attachment) SetOwner(c *Collection) {
	a.owner = c
}

// Owner returns the owning collection, or nil when detached.
func (a *Attachment) Owner() *Collection {
	return a.owner
}

// Sprite is a positionable, tintable drawable. With an Image it renders the
// texture; with a nil Image it renders a W x H solid-color rectangle via the
// shared white pixel.
type Sprite struct {
	Attachment

	Image *ebiten.Image

	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	Color    Color
	Visible  bool

	// W and H give the untextured rectangle size. Ignored when Image is set.
	W, H float64
}

// NewSprite creates a sprite rendering img at the origin.
func NewSprite(img *ebiten.Image) *Sprite {
	return &Sprite{
		Image:   img,
		ScaleX:  1,
		ScaleY:  1,
		Color:   ColorWhite,
		Visible: true,
	}
}

// NewBox creates an untextured w x h solid-color sprite.
func NewBox(w, h float64, clr Color) *Sprite {
	return &Sprite{
		ScaleX:  1,
		ScaleY:  1,
		W:       w,
		H:       h,
		Color:   clr,
		Visible: true,
	}
}

// Width returns the unscaled pixel width of the sprite.
func (s *Sprite) Width() float64 {
	if s.Image != nil {
		return float64(s.Image.Bounds().Dx())
	}
	return s.W
}

// Height returns the unscaled pixel height of the sprite.
func (s *Sprite) Height() float64 {
	if s.Image != nil {
		return float64(s.Image.Bounds().Dy())
	}
	return s.H
}

// Bounds returns the axis-aligned rectangle covered by the sprite at its
// current position and scale. Rotation is not taken into account.
func (s *Sprite) Bounds() Rect {
	return Rect{X: s.X, Y: s.Y, Width: s.Width() * s.ScaleX, Height: s.Height() * s.ScaleY}
}

// Draw submits the sprite to the batch. Invisible sprites submit nothing.
func (s *Sprite) Draw(b *Batch) {
	if !s.Visible {
		return
	}
	sx, sy := s.ScaleX, s.ScaleY
	if s.Image == nil {
		// The white pixel is 1x1; fold the box size into the scale.
		sx *= s.W
		sy *= s.H
	}
	b.DrawImage(s.Image, composeTransform(s.X, s.Y, sx, sy, s.Rotation), s.Color)
}

// Update is a no-op; sprites carry no per-frame state.
func (s *Sprite) Update() error {
	return nil
}
