// Sketch and preview output files.
package storage

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// SaveSketch writes the generated sketch text under dir and returns the
// full path. An empty dir means the current directory.
func SaveSketch(dir, name, text string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("cannot create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("cannot write sketch: %w", err)
	}
	return path, nil
}

// SavePreviewFrames writes every mono frame as a PNG named frame_%04d.png,
// optionally upscaled by an integer factor so the tiny frames are viewable.
func SavePreviewFrames(dir string, frames [][]byte, width, height, scale int) ([]string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("cannot create preview dir: %w", err)
	}
	if scale < 1 {
		scale = 1
	}

	paths := make([]string, 0, len(frames))
	for i, frame := range frames {
		img := monoImage(frame, width, height)
		if scale > 1 {
			big := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
			xdraw.NearestNeighbor.Scale(big, big.Bounds(), img, img.Bounds(), xdraw.Src, nil)
			img = big
		}
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
		if err := writePNG(path, img); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func monoImage(mono []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mono[y*width+x] != 0 {
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
			}
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}
	return f.Sync()
}
