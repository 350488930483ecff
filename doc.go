// Package paintcore is a tiled, 16-bit-per-channel digital painting
// engine: layered canvases, brush/eraser stroke kernels, bounded undo
// history, and a tile-parallel filter plugin contract with reference
// implementations for Gaussian blur, unsharp mask, inpaint, and smudge.
//
// # Quick Start
//
//	import "github.com/inkforge/paintcore"
//
//	c, err := paintcore.NewCanvas(1024, 768)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	c.BeginStroke("red dot")
//	c.DrawBrushStroke(0, []paintcore.Point{{X: 512, Y: 384}}, 40, 1.0, paintcore.Red)
//	c.EndStroke()
//
//	img := c.GetCompositedImage() // 16-bit BGRA, row-major
//
// # Color model
//
// Pixel carries straight (non-premultiplied) 16-bit-per-channel RGBA.
// Pixel.NRGBA64 and PixelFromNRGBA64 convert to and from the standard
// library's image/color.NRGBA64, so a Canvas's layers interoperate with
// anything in the image/* ecosystem.
//
// # Tiling
//
// Every TileGrid is partitioned into fixed TileSize x TileSize Tiles,
// the unit of dirty-region tracking, undo snapshotting, and filter
// dispatch. Filters operate tile-by-tile with no halo exchange between
// neighboring tiles, a documented simplification (see internal/filter).
//
// # Layers and compositing
//
// A Canvas holds an ordered stack of Layers, each with its own pixel
// grid, opacity, BlendMode, visibility, and adjustment stack. RenderTo
// composites the stack bottom-to-top using Porter-Duff "over" with a
// per-blend-mode channel function (internal/blend).
//
// # Undo history
//
// UndoStack keeps a bounded, branch-truncating history of full-canvas
// snapshots: pushing a new state after an undo discards the redo
// branch, and the oldest states are evicted once the configured
// capacity is exceeded.
//
// # Filters
//
// Filter is the tile-processing plugin contract; Registry looks filters
// up by name. Canvas.ApplyFilter hands a layer's full, contiguous,
// row-major tile slice to Process in a single call, reporting per-tile
// progress and checking for cooperative cancellation between tiles.
//
// # Logging
//
// paintcore produces no log output by default. Call SetLogger with a
// *log/slog.Logger to enable it.
package paintcore
