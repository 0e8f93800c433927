package xpm

import "errors"

var (
	// ErrUnsupportedFormat is returned when the pixel data cannot be read
	ErrUnsupportedFormat = errors.New("xpm: unsupported pixel format")
	// ErrOutOfMemory is returned when the output would exceed MaxBufferSize
	ErrOutOfMemory = errors.New("xpm: output too large")
	// ErrWrite is returned when a sink accepts fewer bytes than offered
	ErrWrite = errors.New("xpm: write error")
	// ErrDevice is returned when the output file cannot be opened
	ErrDevice = errors.New("xpm: cannot open output")
)
