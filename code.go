package xpm

import "math/bits"

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	hexDigits    = "0123456789abcdef"
)

// CodeWidth returns the number of characters used to encode each palette
// index of an image with ncols colors. One character holds 6 bits.
func CodeWidth(ncols int) int {
	return (bits.Len(uint(ncols)) + 5) / 6
}

// putIndex writes idx into the first cpp bytes of dst, most significant 6
// bits first
func putIndex(dst []byte, idx, cpp int) {
	for i := 0; i < cpp; i++ {
		dst[i] = codeAlphabet[idx>>(uint(cpp-1-i)*6)&0x3f]
	}
}

// putHex writes the 24-bit color c into the first 6 bytes of dst as
// lowercase hexadecimal
func putHex(dst []byte, c uint32) {
	for i := 5; i >= 0; i-- {
		dst[i] = hexDigits[c&0x0f]
		c >>= 4
	}
}
