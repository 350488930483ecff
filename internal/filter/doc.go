// Package filter implements the tile-buffer processing algorithms behind
// paintcore's reference filter plugins: Gaussian blur (three-pass box-filter
// Kovesi approximation), unsharp mask, inpaint, and smudge, plus a shared
// Canny edge-detection helper used by the latter two.
//
// Every function here operates on a single tile's pixel buffer in place;
// tiles are processed in isolation (no halo exchange with neighboring
// tiles), a documented simplification of the reference implementations.
package filter
