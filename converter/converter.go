/*
Package converter converts image files to XPM, either one at a time or by
walking a directory tree, optionally caching the results.
*/
package converter

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/xpm"
	"github.com/bodgit/xpm/cache"
	"github.com/bodgit/xpm/source"
)

const (
	// Extension is the file extension used for XPM output
	Extension = ".xpm"

	defaultWorkers = 10
)

var extensions = map[string]struct{}{
	".bmp":  {},
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
}

// Converter converts image files to XPM
type Converter struct {
	db      *cache.DB
	logger  *log.Logger
	opts    source.Options
	workers int
}

// New returns a Converter. db may be nil to disable caching and workers
// values less than one use the default number of scan workers.
func New(db *cache.DB, logger *log.Logger, opts source.Options, workers int) *Converter {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &Converter{
		db:      db,
		logger:  logger,
		opts:    opts,
		workers: workers,
	}
}

// IsImage reports whether the file has an extension of a supported image
// format
func IsImage(file string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(file))]
	return ok
}

// OutputName returns the name of the XPM file written next to file
func OutputName(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + Extension
}

// Marshal returns the XPM encoding of the named image file. The file is read
// once so the cache key always matches the pixels that were encoded.
func (c *Converter) Marshal(file string) ([]byte, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var sum string
	if c.db != nil {
		if sum, err = cache.Sum(bytes.NewReader(data)); err != nil {
			return nil, err
		}

		b, err := c.db.Lookup(sum, c.opts.String())
		if err != nil {
			return nil, err
		}
		if b != nil {
			c.logger.Printf("Cache hit for \"%s\", with SHA1 \"%s\"\n", file, sum)
			return b, nil
		}
	}

	src, err := source.Decode(bytes.NewReader(data), c.opts)
	if err != nil {
		return nil, err
	}

	b, err := xpm.Marshal(src)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("Encoded \"%s\", %dx%d\n", file, src.Width(), src.Height())

	if c.db != nil {
		if err := c.db.Store(sum, c.opts.String(), b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Convert writes the XPM encoding of the named image file to w
func (c *Converter) Convert(file string, w io.Writer) error {
	b, err := c.Marshal(file)
	if err != nil {
		return err
	}
	return xpm.Write(w.Write, b)
}

// ConvertFile writes the XPM encoding of the named image file to out
func (c *Converter) ConvertFile(file, out string) error {
	b, err := c.Marshal(file)
	if err != nil {
		return err
	}
	if err := xpm.WriteFile(out, b); err != nil {
		return err
	}
	c.logger.Printf("Wrote \"%s\"\n", out)
	return nil
}
