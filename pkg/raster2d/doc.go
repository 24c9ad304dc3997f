// Package raster2d implements a 2D vector graphics core: path building,
// curve flattening, stroke-to-fill conversion, scanline polygon filling
// with anti-aliasing, affine transforms, pattern sampling, compositing,
// and TrueType-outline text.
package raster2d
