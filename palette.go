package xpm

import "sort"

// colorKey maps a pixel to its opaque 24-bit color or the transparent key
func colorKey(p uint32) uint32 {
	if p>>24 < alphaThreshold {
		return transparentKey
	}
	return p & 0xffffff
}

type palette struct {
	index map[uint32]int
	keys  []uint32 // in order of first appearance
}

// newPalette scans src row by row and assigns each distinct color key the
// next free index
func newPalette(src PixelSource, w, h int) *palette {
	p := &palette{
		index: make(map[uint32]int),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			k := colorKey(src.Pixel(x, y))
			if _, ok := p.index[k]; !ok {
				p.index[k] = len(p.keys)
				p.keys = append(p.keys, k)
			}
		}
	}
	return p
}

func (p *palette) Len() int {
	return len(p.keys)
}

// sorted returns the color keys in ascending order
func (p *palette) sorted() []uint32 {
	keys := append(p.keys[:0:0], p.keys...)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
