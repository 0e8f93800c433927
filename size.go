package xpm

// EstimateSize returns an upper bound of the length of the XPM text for a w
// by h image with ncols colors each encoded with cpp characters.
func EstimateSize(w, h, ncols, cpp int) int {
	return headerSlack + ncols*(cpp+paletteSlack) + h*(w*cpp+rowSlack)
}

// checkedSize is EstimateSize that refuses anything over MaxBufferSize
// rather than overflowing
func checkedSize(w, h, ncols, cpp int) (int, error) {
	// Every row costs at least rowSlack, but the width only matters if there
	// are rows to fill
	if h > MaxBufferSize || (h > 0 && w > MaxBufferSize) || ncols > maxColor+1 {
		return 0, ErrOutOfMemory
	}

	if h == 0 {
		return headerSlack + ncols*(cpp+paletteSlack), nil
	}

	// Bounded by 5 * 2^31 so cannot overflow a uint64
	row := uint64(w)*uint64(cpp) + rowSlack
	if row > MaxBufferSize {
		return 0, ErrOutOfMemory
	}

	n := headerSlack + uint64(ncols)*uint64(cpp+paletteSlack) + uint64(h)*row
	if n > MaxBufferSize {
		return 0, ErrOutOfMemory
	}

	return int(n), nil
}
