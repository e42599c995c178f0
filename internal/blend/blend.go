// Package blend composites caption coverage onto images with the
// Porter-Duff "source over" operator.
//
// All operations work with premultiplied alpha values in the range 0-255,
// matching the layout of image.RGBA.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend
