package core

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"github.com/1F47E/go-oledreel/internal/config"
	p "github.com/1F47E/go-oledreel/internal/core/progress"
	"github.com/1F47E/go-oledreel/internal/job"
	"github.com/1F47E/go-oledreel/internal/logger"
	"github.com/1F47E/go-oledreel/internal/raster"
	"github.com/1F47E/go-oledreel/internal/sampler"
	"github.com/1F47E/go-oledreel/internal/workers"
)

// FrameSource is a decodable video: a duration, a seek that resolves once
// the frame at a timestamp is ready, and a Close releasing the decoder.
// video.File is the ffmpeg-backed implementation.
type FrameSource interface {
	Duration() float64
	ExtractAt(ctx context.Context, ts float64) (image.Image, error)
	Close() error
}

// ProcessVideo opens the video and runs Process on it. The decode handle is
// released on every exit path.
func (c *Core) ProcessVideo(path string, opts ProcessOptions) (*ProcessResult, error) {
	log := logger.Log.WithField("scope", "core process")

	src, err := c.open(c.ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			log.Debugf("closing video: %v", cerr)
		}
	}()

	return c.Process(src, opts)
}

// Process samples the source, rasterizes each timestamp serially, then
// quantizes and packs the frames on all cores. A timestamp whose seek or
// decode fails is skipped; the run only fails when no frame survives.
func (c *Core) Process(src FrameSource, opts ProcessOptions) (*ProcessResult, error) {
	log := logger.Log.WithField("scope", "core process")

	if err := opts.validate(); err != nil {
		return nil, err
	}

	duration := src.Duration()
	if duration <= 0 {
		return nil, fmt.Errorf("video has no duration")
	}
	maxDuration := opts.MaxDuration
	if maxDuration <= 0 {
		maxDuration = config.MaxDurationSec
	}
	if duration > maxDuration {
		log.Debugf("duration %.2fs capped to %.2fs", duration, maxDuration)
		duration = maxDuration
	}

	timestamps, fps := sampler.Sample(duration, sampler.Options{
		TargetFps:    opts.TargetFps,
		MaxFrames:    opts.MaxFrames,
		TargetFrames: opts.TargetFrames,
	})
	log.Debugf("sampling %d frames at %.3f fps", len(timestamps), fps)

	// ===== EXTRACT + RASTERIZE, in order

	p.ProgressReset(len(timestamps), "Extracting frames... ")
	rast := raster.New(opts.Width, opts.Height, opts.Orientation)

	rgbaFrames := make([][]byte, 0, len(timestamps))
	for _, ts := range timestamps {
		frame, err := src.ExtractAt(c.ctx, ts)
		if err != nil {
			log.Warnf("skipping frame at %.3fs: %v", ts, err)
			p.Add(1)
			continue
		}
		rgbaFrames = append(rgbaFrames, rast.Rasterize(frame))
		p.Add(1)
	}
	p.Finish()

	if len(rgbaFrames) == 0 {
		return nil, fmt.Errorf("no frames extracted")
	}

	// ===== QUANTIZE + PACK

	// per-index result channels keep the output in timestamp order
	resChs := make([]chan job.FrameRes, len(rgbaFrames))
	for i := range resChs {
		resChs[i] = make(chan job.FrameRes, 1)
	}
	jobs := make(chan job.Frame)

	w := workers.NewWorker(c.ctx, rast.Width(), rast.Height(), opts.Threshold)
	cores := runtime.NumCPU()
	log.Debugf("Starting %d workers", cores)
	for i := 0; i < cores; i++ {
		go w.WorkerPack(i+1, jobs, resChs)
	}

	go func() {
		for i, rgba := range rgbaFrames {
			select {
			case <-c.ctx.Done():
				return
			case jobs <- job.Frame{Idx: i, RGBA: rgba}:
			}
		}
		close(jobs)
	}()

	res := &ProcessResult{
		FramesMono:   make([][]byte, 0, len(rgbaFrames)),
		FramesPacked: make([][]byte, 0, len(rgbaFrames)),
		Width:        rast.Width(),
		Height:       rast.Height(),
		Fps:          fps,
		Duration:     duration,
	}
	for i := range resChs {
		select {
		case <-c.ctx.Done():
			return nil, c.ctx.Err()
		case r := <-resChs[i]:
			res.FramesMono = append(res.FramesMono, r.Mono)
			res.FramesPacked = append(res.FramesPacked, r.Packed)
		}
	}
	log.Debugf("processed %d frames", len(res.FramesPacked))
	return res, nil
}
