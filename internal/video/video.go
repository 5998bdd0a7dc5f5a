package video

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/1F47E/go-oledreel/internal/logger"
)

// File is a seekable video handle backed by ffmpeg. Every handle owns one
// scratch dir for decoded frames; Close releases it. One handle is opened
// per processing run and must be closed on every exit path.
type File struct {
	path     string
	duration float64
	workDir  string
}

func Open(ctx context.Context, path string) (*File, error) {
	log := logger.Log.WithField("scope", "video")

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot open video: %w", err)
	}
	duration, err := probeDuration(ctx, path)
	if err != nil {
		return nil, err
	}
	if duration <= 0 {
		return nil, fmt.Errorf("video has zero duration")
	}
	workDir, err := os.MkdirTemp("", "oledreel-")
	if err != nil {
		return nil, fmt.Errorf("cannot create work dir: %w", err)
	}
	log.Debugf("opened %s, duration %.3fs", path, duration)
	return &File{path: path, duration: duration, workDir: workDir}, nil
}

func (f *File) Duration() float64 {
	return f.duration
}

// ExtractAt seeks to the timestamp and decodes a single frame. Timestamps
// past the end are clamped to the video duration. The call blocks until the
// frame is decoded and stable.
func (f *File) ExtractAt(ctx context.Context, ts float64) (image.Image, error) {
	if ts > f.duration {
		ts = f.duration
	}
	if ts < 0 {
		ts = 0
	}
	out := filepath.Join(f.workDir, "frame.png")
	args := []string{
		"-y",
		"-ss", strconv.FormatFloat(ts, 'f', 4, 64),
		"-i", f.path,
		"-frames:v", "1",
		out,
	}
	logger.Log.Debugf("Running ffmpeg command: ffmpeg %s\n", strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("seek to %.3fs failed: %w", ts, err)
	}

	file, err := os.Open(out)
	if err != nil {
		return nil, fmt.Errorf("no frame decoded at %.3fs: %w", ts, err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("cannot decode frame at %.3fs: %w", ts, err)
	}
	return img, nil
}

func (f *File) Close() error {
	return os.RemoveAll(f.workDir)
}

// probeDuration asks ffprobe for the container duration in seconds.
func probeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("cannot probe video duration: %w", err)
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("unreadable video duration %q: %w", strings.TrimSpace(string(out)), err)
	}
	return duration, nil
}
