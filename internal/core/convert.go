package core

import (
	"fmt"

	p "github.com/1F47E/go-oledreel/internal/core/progress"
	"github.com/1F47E/go-oledreel/internal/gen"
	"github.com/1F47E/go-oledreel/internal/logger"
	"github.com/1F47E/go-oledreel/internal/meta"
	"github.com/1F47E/go-oledreel/internal/storage"
)

// Convert runs the whole pipeline on a video file and writes the generated
// sketch into outDir. Returns the written path.
func (c *Core) Convert(path string, opts ProcessOptions, lib gen.Library, outDir string) (string, error) {
	log := logger.Log.WithField("scope", "core convert")

	res, err := c.ProcessVideo(path, opts)
	if err != nil {
		return "", fmt.Errorf("failed to process video: %w", err)
	}

	p.ProgressSpinner("Generating sketch... ")
	text, err := gen.Generate(res.FramesPacked, res.Width, res.Height, res.Fps, lib)
	if err != nil {
		return "", fmt.Errorf("failed to generate sketch: %w", err)
	}
	p.Finish()

	m := meta.New(path, res.Width, res.Height, res.Fps, len(res.FramesPacked), lib.String())
	out, err := storage.SaveSketch(outDir, m.Filename(), text)
	if err != nil {
		return "", err
	}
	log.Infof("Saved %s", m.Print())
	return out, nil
}

// Preview runs the pipeline and dumps the mono frames as PNGs into outDir.
func (c *Core) Preview(path string, opts ProcessOptions, outDir string, scale int) ([]string, error) {
	res, err := c.ProcessVideo(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to process video: %w", err)
	}
	return storage.SavePreviewFrames(outDir, res.FramesMono, res.Width, res.Height, scale)
}
