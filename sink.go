package xpm

import (
	"fmt"
	"io"
	"os"
)

// WriteFunc receives the complete XPM text in a single call. It follows the
// io.Writer contract, returning the number of bytes written.
type WriteFunc func(p []byte) (n int, err error)

// Write passes b to fn exactly once, anything less than a complete write is
// an error.
func Write(fn WriteFunc, b []byte) error {
	n, err := fn(b)
	switch {
	case err != nil:
		return fmt.Errorf("%w: %w", ErrWrite, err)
	case n < len(b):
		return fmt.Errorf("%w: %w", ErrWrite, io.ErrShortWrite)
	}
	return nil
}

// EncodeStream encodes src and passes the result to fn exactly once.
func EncodeStream(src PixelSource, fn WriteFunc) error {
	b, err := Marshal(src)
	if err != nil {
		return err
	}
	return Write(fn, b)
}

// Encode writes src to w in XPM format.
func Encode(w io.Writer, src PixelSource) error {
	return EncodeStream(src, w.Write)
}

// createFile creates or truncates the named file with mode 0644, hands it to
// fn and always closes it afterwards
func createFile(name string, fn func(*os.File) error) (err error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDevice, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWrite, cerr)
		}
	}()

	return fn(f)
}

// EncodeFile writes src in XPM format to the named file, creating it with
// mode 0644 or truncating it if it already exists. The file is always closed
// before returning.
func EncodeFile(src PixelSource, name string) error {
	return createFile(name, func(f *os.File) error {
		return Encode(f, src)
	})
}

// WriteFile writes previously encoded XPM text to the named file in the same
// way as EncodeFile.
func WriteFile(name string, b []byte) error {
	return createFile(name, func(f *os.File) error {
		return Write(f.Write, b)
	})
}
