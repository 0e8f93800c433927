/*
Package xpm implements an XPM (X PixMap) encoder.

XPM output is C source text: a static array of string literals holding a
"width height ncolors cpp" header, one literal per palette color and one
literal per pixel row. Every palette index is written as a fixed width code
of cpp characters taken from the base64 alphabet.

Only 24-bit RGB plus single-bit transparency is supported. Every distinct
RGB value gets its own palette entry and any pixel with an alpha value below
50% collapses into the single transparent color "None".
*/
package xpm

const (
	maxColor       = 0x1000000 // 2^24
	transparentKey = maxColor  // sorts after every opaque color
	alphaThreshold = 0x80

	// Covers the comment, the array declaration, the dimensions literal and
	// the trailer
	headerSlack = 256
	// `,\n"` + ` c #xxxxxx"`
	paletteSlack = 14
	// `,\n"` + `"`
	rowSlack = 4

	// MaxBufferSize is the largest output the encoder will allocate
	MaxBufferSize = 1<<31 - 1
)

// PixelSource is a rectangular grid of pixels in 0xAARRGGBB layout. The
// top-left pixel is at (0, 0) and Pixel is only called with 0 <= x < Width()
// and 0 <= y < Height().
type PixelSource interface {
	Width() int
	Height() int
	Pixel(x, y int) uint32
}
