package source

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"

	"github.com/bodgit/xpm"
	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrInvalidOptions is returned when Options holds a negative value
var ErrInvalidOptions = errors.New("source: invalid options")

// Options controls how an image is adapted before encoding
type Options struct {
	// Width and Height resize the image, if one is zero the aspect ratio
	// is preserved. Both zero leaves the image untouched.
	Width  int
	Height int
	// MaxColors reduces the image to at most this many colors. Zero
	// disables color reduction.
	MaxColors int
	// Opaque ignores any alpha channel
	Opaque bool
}

// String returns a canonical form of the options
func (o Options) String() string {
	return fmt.Sprintf("width=%d,height=%d,colors=%d,opaque=%t", o.Width, o.Height, o.MaxColors, o.Opaque)
}

// Validate checks that no option is negative
func (o Options) Validate() error {
	if o.Width < 0 || o.Height < 0 || o.MaxColors < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidOptions, o)
	}
	return nil
}

// Adapt applies opts to m and returns the result as a pixel source
func Adapt(m image.Image, opts Options) (xpm.PixelSource, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if opts.Width > 0 || opts.Height > 0 {
		m = imaging.Resize(m, opts.Width, opts.Height, imaging.Lanczos)
	}

	if opts.MaxColors > 0 && !m.Bounds().Empty() {
		b := m.Bounds()
		q := quantize.MedianCutQuantizer{}
		pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, opts.MaxColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
		m = pm
	}

	var src xpm.PixelSource = FromImage(m)
	if opts.Opaque {
		src = Opaque(src)
	}

	return src, nil
}

func decodeError(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return fmt.Errorf("%w: %w", xpm.ErrUnsupportedFormat, err)
	}
	return err
}

// Decode reads an image in any registered format from r and adapts it
func Decode(r io.Reader, opts Options) (xpm.PixelSource, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, decodeError(err)
	}
	return Adapt(m, opts)
}

// Open reads the named image file and adapts it
func Open(name string, opts Options) (xpm.PixelSource, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m, err := imaging.Open(name, imaging.AutoOrientation(true))
	if err != nil {
		return nil, decodeError(err)
	}
	return Adapt(m, opts)
}
