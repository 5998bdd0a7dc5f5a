package core

import (
	"fmt"

	"github.com/1F47E/go-oledreel/internal/config"
	"github.com/1F47E/go-oledreel/internal/raster"
)

// ProcessOptions describe one conversion. Width and Height are the target
// display cells before orientation is applied.
type ProcessOptions struct {
	Width        int
	Height       int
	Orientation  raster.Orientation
	TargetFps    float64
	MaxFrames    int
	TargetFrames int
	Threshold    int
	// MaxDuration caps how many seconds of video get sampled.
	// Zero means the platform default of 30s.
	MaxDuration float64
}

// DefaultOptions returns the platform defaults, threshold 128 included.
func DefaultOptions() ProcessOptions {
	return ProcessOptions{
		Width:       config.DefaultWidth,
		Height:      config.DefaultHeight,
		Orientation: raster.Horizontal,
		TargetFps:   config.DefaultTargetFps,
		MaxFrames:   config.DefaultMaxFrames,
		Threshold:   config.DefaultThreshold,
		MaxDuration: config.MaxDurationSec,
	}
}

func (o *ProcessOptions) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid display size %dx%d", o.Width, o.Height)
	}
	if o.Threshold < 0 || o.Threshold > 255 {
		return fmt.Errorf("threshold %d out of range 0..255", o.Threshold)
	}
	return nil
}

// ProcessResult holds the two parallel frame sequences plus the actual
// rasterized shape and effective playback fps. FramesMono and FramesPacked
// always have the same length.
type ProcessResult struct {
	FramesMono   [][]byte
	FramesPacked [][]byte
	Width        int
	Height       int
	Fps          float64
	Duration     float64
}
