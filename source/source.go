/*
Package source adapts decoded images to the 0xAARRGGBB pixel layout consumed
by the xpm encoder.

Any image.Image can be adapted. Images can optionally be resized and reduced
to a smaller number of colors before they are handed to the encoder.
*/
package source

import (
	"image"
	"image/color"

	"github.com/bodgit/xpm"
)

// Bitmap is a rectangular grid of 0xAARRGGBB pixels stored row by row
type Bitmap struct {
	Pix []uint32
	W   int
	H   int
}

// NewBitmap returns a fully transparent w by h bitmap
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{
		Pix: make([]uint32, w*h),
		W:   w,
		H:   h,
	}
}

// Width returns the width of the bitmap in pixels
func (b *Bitmap) Width() int { return b.W }

// Height returns the height of the bitmap in pixels
func (b *Bitmap) Height() int { return b.H }

// Pixel returns the pixel at (x, y)
func (b *Bitmap) Pixel(x, y int) uint32 { return b.Pix[y*b.W+x] }

// Set sets the pixel at (x, y)
func (b *Bitmap) Set(x, y int, c uint32) { b.Pix[y*b.W+x] = c }

func argb(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromImage copies m into a new Bitmap, converting every pixel to
// non-premultiplied ARGB. The top-left corner of m becomes (0, 0).
func FromImage(m image.Image) *Bitmap {
	b := m.Bounds()
	bm := NewBitmap(b.Dx(), b.Dy())

	switch m := m.(type) {
	case *image.NRGBA:
		for y := 0; y < bm.H; y++ {
			i := m.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < bm.W; x, i = x+1, i+4 {
				bm.Set(x, y, argb(color.NRGBA{m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3]}))
			}
		}
	case *image.RGBA:
		for y := 0; y < bm.H; y++ {
			i := m.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < bm.W; x, i = x+1, i+4 {
				c := color.RGBA{m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3]}
				switch c.A {
				case 0xff:
					bm.Set(x, y, argb(color.NRGBA{c.R, c.G, c.B, c.A}))
				case 0x00:
				default:
					bm.Set(x, y, argb(color.NRGBAModel.Convert(c).(color.NRGBA)))
				}
			}
		}
	case *image.Paletted:
		// Convert each palette entry once
		p := make([]uint32, len(m.Palette))
		for i, c := range m.Palette {
			p[i] = argb(color.NRGBAModel.Convert(c).(color.NRGBA))
		}
		for y := 0; y < bm.H; y++ {
			for x := 0; x < bm.W; x++ {
				if i := int(m.ColorIndexAt(b.Min.X+x, b.Min.Y+y)); i < len(p) {
					bm.Set(x, y, p[i])
				}
			}
		}
	default:
		for y := 0; y < bm.H; y++ {
			for x := 0; x < bm.W; x++ {
				bm.Set(x, y, argb(color.NRGBAModel.Convert(m.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)))
			}
		}
	}

	return bm
}

type opaque struct {
	xpm.PixelSource
}

func (o opaque) Pixel(x, y int) uint32 {
	return o.PixelSource.Pixel(x, y) | 0xff000000
}

// Opaque returns a view of src with every pixel fully opaque, the equivalent
// of a 24-bit RGB image
func Opaque(src xpm.PixelSource) xpm.PixelSource {
	return opaque{src}
}
