package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/1F47E/go-oledreel/internal/config"
	"github.com/1F47E/go-oledreel/internal/core"
	"github.com/1F47E/go-oledreel/internal/gen"
	"github.com/1F47E/go-oledreel/internal/logger"
	"github.com/1F47E/go-oledreel/internal/raster"
	"github.com/1F47E/go-oledreel/internal/sampler"
	"github.com/1F47E/go-oledreel/internal/server"
	"github.com/1F47E/go-oledreel/internal/video"
)

var app = cli.NewApp()
var log = logger.Log

var convertFlags = []cli.Flag{
	cli.StringFlag{Name: "size, s", Value: "128x64", Usage: "Display preset: 128x64, 96x64, 128x32, 64x48 or custom WxH"},
	cli.StringFlag{Name: "orientation", Value: "horizontal", Usage: "Display orientation: horizontal or vertical"},
	cli.Float64Flag{Name: "fps", Value: config.DefaultTargetFps, Usage: "Target sampling fps, clamped to 1..30"},
	cli.IntFlag{Name: "frames", Usage: "Exact frame count to sample (overrides fps)"},
	cli.IntFlag{Name: "max-frames", Value: config.DefaultMaxFrames, Usage: "Hard cap on sampled frames"},
	cli.IntFlag{Name: "threshold", Value: config.DefaultThreshold, Usage: "Luminance cutoff 0..255, pixels at or above turn white"},
	cli.StringFlag{Name: "library, l", Value: gen.SSD1306.String(), Usage: "Target library: adafruit_gfx_ssd1306, adafruit_gfx_ssd1331 or u8g2"},
	cli.StringFlag{Name: "out, o", Value: ".", Usage: "Output directory"},
	cli.StringFlag{Name: "preset, p", Usage: "YAML preset file with conversion options"},
}

func init() {
	app.Name = "oledreel"
	app.Usage = "A video to OLED animation converter"
	app.UsageText = "oledreel [command] filename"
	app.HideHelp = true
	app.HideVersion = true
	app.Commands = []cli.Command{
		{
			Name:    "convert",
			Aliases: []string{"c"},
			Usage:   "Convert a video into an Arduino sketch",
			Flags:   convertFlags,
			Action: func(c *cli.Context) error {
				filename, err := getFilename(c)
				if err != nil {
					return err
				}
				opts, lib, err := optionsFromFlags(c)
				if err != nil {
					return err
				}
				out, err := core.NewCore(context.Background()).Convert(filename, opts, lib, c.String("out"))
				if err != nil {
					return err
				}
				log.Infof("Sketch saved to %s", out)
				return nil
			},
		},
		{
			Name:    "preview",
			Aliases: []string{"w"},
			Usage:   "Dump the 1-bit frames as PNGs without generating a sketch",
			Flags: append(convertFlags,
				cli.IntFlag{Name: "scale", Value: 4, Usage: "Integer preview upscale factor"},
			),
			Action: func(c *cli.Context) error {
				filename, err := getFilename(c)
				if err != nil {
					return err
				}
				opts, _, err := optionsFromFlags(c)
				if err != nil {
					return err
				}
				paths, err := core.NewCore(context.Background()).Preview(filename, opts, c.String("out"), c.Int("scale"))
				if err != nil {
					return err
				}
				log.Infof("Saved %d preview frames to %s", len(paths), c.String("out"))
				return nil
			},
		},
		{
			Name:    "probe",
			Aliases: []string{"i"},
			Usage:   "Print video duration and the sampling plan",
			Flags:   convertFlags,
			Action: func(c *cli.Context) error {
				filename, err := getFilename(c)
				if err != nil {
					return err
				}
				opts, _, err := optionsFromFlags(c)
				if err != nil {
					return err
				}
				ctx := context.Background()
				src, err := video.Open(ctx, filename)
				if err != nil {
					return err
				}
				defer src.Close()

				duration := src.Duration()
				if duration > opts.MaxDuration {
					duration = opts.MaxDuration
				}
				timestamps, fps := sampler.Sample(duration, sampler.Options{
					TargetFps:    opts.TargetFps,
					MaxFrames:    opts.MaxFrames,
					TargetFrames: opts.TargetFrames,
				})
				log.Infof("Duration: %.3fs (of %.3fs)", duration, src.Duration())
				log.Infof("Plan: %d frames at %.3f fps, %dx%d %s",
					len(timestamps), fps, opts.Width, opts.Height, opts.Orientation)
				return nil
			},
		},
		{
			Name:    "serve",
			Aliases: []string{"s"},
			Usage:   "Run the HTTP conversion API",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "addr, a", Value: ":8080", Usage: "Listen address"},
			},
			Action: func(c *cli.Context) error {
				return server.Run(context.Background(), c.String("addr"))
			},
		},
	}
}

func getFilename(c *cli.Context) (string, error) {
	f := c.Args().Get(0)
	if f == "" {
		return "", fmt.Errorf("Filename is required")
	}
	return f, nil
}

// optionsFromFlags resolves defaults, then the preset file, then any flags
// set explicitly on the command line, in that order.
func optionsFromFlags(c *cli.Context) (core.ProcessOptions, gen.Library, error) {
	opts := core.DefaultOptions()
	library := gen.ParseLibrary(c.String("library"))

	if path := c.String("preset"); path != "" {
		preset, err := config.LoadPreset(path)
		if err != nil {
			return opts, 0, err
		}
		if preset.DisplaySize != "" {
			opts.Width, opts.Height = config.ParseDisplaySize(preset.DisplaySize)
		}
		if preset.Width > 0 && preset.Height > 0 {
			opts.Width, opts.Height = preset.Width, preset.Height
		}
		if preset.Orientation != "" {
			opts.Orientation = raster.ParseOrientation(preset.Orientation)
		}
		if preset.TargetFps > 0 {
			opts.TargetFps = preset.TargetFps
		}
		if preset.MaxFrames > 0 {
			opts.MaxFrames = preset.MaxFrames
		}
		if preset.TargetFrames > 0 {
			opts.TargetFrames = preset.TargetFrames
		}
		if preset.Threshold != nil {
			opts.Threshold = *preset.Threshold
		}
		if preset.Library != "" {
			library = gen.ParseLibrary(preset.Library)
		}
	}

	if c.IsSet("size") || c.String("preset") == "" {
		w, h, err := config.ParseSize(c.String("size"))
		if err != nil {
			// not WxH, try the preset names
			w, h = config.ParseDisplaySize(c.String("size"))
		}
		opts.Width, opts.Height = w, h
	}
	if c.IsSet("orientation") {
		opts.Orientation = raster.ParseOrientation(c.String("orientation"))
	}
	if c.IsSet("fps") {
		opts.TargetFps = c.Float64("fps")
	}
	if c.IsSet("frames") {
		opts.TargetFrames = c.Int("frames")
	}
	if c.IsSet("max-frames") {
		opts.MaxFrames = c.Int("max-frames")
	}
	if c.IsSet("threshold") {
		opts.Threshold = c.Int("threshold")
	}
	if c.IsSet("library") {
		library = gen.ParseLibrary(c.String("library"))
	}
	return opts, library, nil
}

func main() {
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
