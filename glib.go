package glib

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at batch submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black, the default rest color for hoverable labels.
var ColorBlack = Color{0, 0, 0, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// WhitePixel is a 1x1 white image used by default for solid color sprites.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// --- Affine transforms ---
//
// Transforms are [6]float64 affine matrices in the layout [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// composeTransform builds a local transform from position, scale, and rotation.
// Composition order: Scale -> Rotate -> Translate(x, y).
func composeTransform(x, y, scaleX, scaleY, rotation float64) [6]float64 {
	if rotation == 0 {
		return [6]float64{scaleX, 0, 0, scaleY, x, y}
	}
	sin, cos := math.Sincos(rotation)
	return [6]float64{
		cos * scaleX,
		sin * scaleX,
		-sin * scaleY,
		cos * scaleY,
		x,
		y,
	}
}

// translateTransform composes a local translation into an existing transform:
// result = world * Translate(localX, localY).
func translateTransform(world [6]float64, localX, localY float64) [6]float64 {
	return [6]float64{
		world[0], world[1], world[2], world[3],
		world[0]*localX + world[2]*localY + world[4],
		world[1]*localX + world[3]*localY + world[5],
	}
}

// transformGeoM converts a [6]float64 transform into an ebiten.GeoM.
func transformGeoM(t [6]float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}
