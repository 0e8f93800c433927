package xpm

import (
	"errors"
	"fmt"
)

// The buffer is sized by EstimateSize so running out of room is a bug
var errOverrun = errors.New("xpm: output buffer overrun")

type encoder struct {
	buf []byte
	n   int
	cpp int
}

func (e *encoder) writeString(s string) {
	if copy(e.buf[e.n:], s) != len(s) {
		panic(errOverrun)
	}
	e.n += len(s)
}

func (e *encoder) writeIndex(idx int) {
	if e.n+e.cpp > len(e.buf) {
		panic(errOverrun)
	}
	putIndex(e.buf[e.n:], idx, e.cpp)
	e.n += e.cpp
}

func (e *encoder) writeColor(c uint32) {
	if e.n+6 > len(e.buf) {
		panic(errOverrun)
	}
	putHex(e.buf[e.n:], c)
	e.n += 6
}

func (e *encoder) encode(src PixelSource, w, h int, p *palette) {
	e.writeString(fmt.Sprintf("/* XPM */\nstatic char *xpm_c%d_[] = {\n\"%d %d %d %d\"", p.Len(), w, h, p.Len(), e.cpp))

	for _, k := range p.sorted() {
		e.writeString(",\n\"")
		e.writeIndex(p.index[k])
		if k == transparentKey {
			e.writeString(" c None\"")
			continue
		}
		e.writeString(" c #")
		e.writeColor(k)
		e.writeString("\"")
	}

	for y := 0; y < h; y++ {
		e.writeString(",\n\"")
		for x := 0; x < w; x++ {
			e.writeIndex(p.index[colorKey(src.Pixel(x, y))])
		}
		e.writeString("\"")
	}

	e.writeString("\n};\n")
}

// Marshal returns the XPM encoding of src. The length of the returned slice
// is the length of the text, its capacity is the size estimated up front.
func Marshal(src PixelSource) ([]byte, error) {
	w, h := src.Width(), src.Height()
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrUnsupportedFormat, w, h)
	}

	// Reject anything hopelessly large before scanning every pixel
	if h > 0 {
		if _, err := checkedSize(w, h, 0, min(w, 1)); err != nil {
			return nil, err
		}
	}

	p := newPalette(src, w, h)
	cpp := CodeWidth(p.Len())

	size, err := checkedSize(w, h, p.Len(), cpp)
	if err != nil {
		return nil, err
	}

	e := encoder{
		buf: make([]byte, size),
		cpp: cpp,
	}
	e.encode(src, w, h, p)

	return e.buf[:e.n], nil
}
