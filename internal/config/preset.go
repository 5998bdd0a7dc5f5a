package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Preset is a YAML conversion profile. Missing fields keep their defaults,
// threshold included (absent means 128, zero means an actual zero cutoff).
type Preset struct {
	DisplaySize  string  `yaml:"display_size,omitempty"`
	Width        int     `yaml:"width,omitempty"`
	Height       int     `yaml:"height,omitempty"`
	Orientation  string  `yaml:"orientation,omitempty"`
	TargetFps    float64 `yaml:"target_fps,omitempty"`
	MaxFrames    int     `yaml:"max_frames,omitempty"`
	TargetFrames int     `yaml:"target_frames,omitempty"`
	Threshold    *int    `yaml:"threshold,omitempty"`
	Library      string  `yaml:"library,omitempty"`
}

func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read preset: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("cannot parse preset: %w", err)
	}
	if p.Threshold != nil && (*p.Threshold < 0 || *p.Threshold > 255) {
		return nil, fmt.Errorf("preset threshold %d out of range 0..255", *p.Threshold)
	}
	return &p, nil
}
