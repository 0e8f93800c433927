package main

import (
	"io"
	"log"
	"os"

	"github.com/bodgit/xpm/cache"
	"github.com/bodgit/xpm/converter"
	"github.com/bodgit/xpm/source"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) (*converter.Converter, func() error, error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	opts := source.Options{
		Width:     c.Int("width"),
		Height:    c.Int("height"),
		MaxColors: c.Int("colors"),
		Opaque:    c.Bool("opaque"),
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	var db *cache.DB
	closer := func() error { return nil }
	if file := c.String("db"); file != "" {
		var err error
		if db, err = cache.New(file); err != nil {
			return nil, nil, err
		}
		closer = db.Close
	}

	return converter.New(db, logger, opts, c.Int("workers")), closer, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "xpmconv"
	app.Usage = "Convert images to XPM"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"XPMCONV_DB"},
			Usage:   "path to cache database, disabled if empty",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "resize to this width, 0 preserves the aspect ratio",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "resize to this height, 0 preserves the aspect ratio",
		},
		&cli.IntFlag{
			Name:  "colors",
			Usage: "reduce to at most this many colors, 0 keeps every color",
		},
		&cli.BoolFlag{
			Name:  "opaque",
			Usage: "ignore transparency",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an image to XPM",
			Description: "Writes the XPM to OUTPUT or to stdout if OUTPUT is omitted",
			ArgsUsage:   "FILE [OUTPUT]",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, closer, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				if c.NArg() < 2 {
					err = conv.Convert(c.Args().First(), os.Stdout)
				} else {
					err = conv.ConvertFile(c.Args().First(), c.Args().Get(1))
				}
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Convert every image in a directory tree",
			Description: "Each image is written as an XPM file alongside the original",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "workers",
					EnvVars: []string{"XPMCONV_WORKERS"},
					Value:   10,
					Usage:   "number of images converted concurrently",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, closer, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				if err := conv.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
