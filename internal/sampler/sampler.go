package sampler

import (
	"github.com/1F47E/go-oledreel/internal/config"
)

type Options struct {
	TargetFps    float64
	MaxFrames    int
	TargetFrames int
}

// Sample computes the timestamps to grab from a video of the given duration,
// plus the effective playback fps. The fps is tied to the actual sampling
// density so that generated-sketch timing matches what was sampled: asking
// for 10 frames of a 2s clip plays back at 5 fps, whatever the target was.
//
// Pure arithmetic, no media decoding happens here.
func Sample(duration float64, opts Options) ([]float64, float64) {
	fps := opts.TargetFps
	if fps < config.MinFps {
		fps = config.MinFps
	}
	if fps > config.MaxFps {
		fps = config.MaxFps
	}

	var total int
	if opts.TargetFrames > 0 {
		total = opts.TargetFrames
	} else {
		total = int(duration * fps)
	}
	if opts.MaxFrames > 0 && total > opts.MaxFrames {
		total = opts.MaxFrames
	}
	if total < 0 {
		total = 0
	}

	if total > 0 && float64(total)/duration < fps {
		fps = float64(total) / duration
	}

	timestamps := make([]float64, 0, total)
	step := 1.0 / fps
	for t := 0.0; len(timestamps) < total && t < duration; t += step {
		timestamps = append(timestamps, t)
	}
	// degenerate durations still produce one frame, at the very start
	if len(timestamps) == 0 {
		timestamps = append(timestamps, 0)
	}
	return timestamps, fps
}
