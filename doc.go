// Package glib is a small sprite and UI helper layer for [Ebitengine].
//
// Glib sits directly on top of Ebitengine's images, transforms, and keyboard
// polling. It provides a batched draw-submission context, text labels with
// hover coloring, a polled text-input widget with password masking and
// horizontal scrolling, and an ordered collection that fans out per-frame
// update and draw calls.
//
// # Quick start
//
// Implement [ebiten.Game] yourself and drive a [Collection] from it:
//
//	type Game struct {
//		sprites *glib.Collection
//		batch   *glib.Batch
//	}
//
//	func (g *Game) Update() error {
//		return g.sprites.UpdateDelta(time.Second / time.Duration(ebiten.TPS()))
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.sprites.Draw(g.batch, screen)
//	}
//
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Members
//
// Every drawable element implements [Member]: [Sprite] for textures and
// solid-color boxes, [Label] for text, and [TextInput] for keyboard-driven
// text entry. Members that need frame timing additionally implement
// [DeltaUpdater]; [Collection.UpdateDelta] dispatches elapsed time only to
// those.
//
//	ui := glib.NewCollection()
//	font, _ := glib.DefaultFont()
//	input := glib.NewTextInput(font, 20, 20, 200)
//	input.Focused = true
//	ui.Add(input)
//
// # Key features
//
// Glib includes batched sprite submission via DrawTriangles32, TTF and
// fixed-grid bitmap fonts, poll-cadence keyboard input with shift mapping,
// move/submit/update listener registries, YAML themes, tweens (via [gween]),
// and synthetic keyboard injection for automated tests.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package glib
