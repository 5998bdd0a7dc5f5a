package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Policy values copied from the surrounding platform. They are defaults,
// not invariants: callers can override threshold and duration cap per call.
const (
	DefaultWidth     = 128
	DefaultHeight    = 64
	DefaultThreshold = 128
	DefaultTargetFps = 30.0
	DefaultMaxFrames = 300

	// fps clamp for the frame sampler
	MinFps = 1.0
	MaxFps = 30.0

	// upstream cap on how much of a video gets sampled
	MaxDurationSec = 30.0

	// download filename convention: video_to_oled_<id>.ino
	SketchFilePrefix = "video_to_oled_"
	SketchFileExt    = ".ino"
)

// displaySizes are the recognized display presets.
var displaySizes = map[string][2]int{
	"128x64": {128, 64},
	"96x64":  {96, 64},
	"128x32": {128, 32},
	"64x48":  {64, 48},
}

// ParseDisplaySize resolves a preset name like "128x64" to pixel dimensions.
// "custom" and unknown names fall back to the default 128x64.
func ParseDisplaySize(name string) (int, int) {
	if wh, ok := displaySizes[name]; ok {
		return wh[0], wh[1]
	}
	return DefaultWidth, DefaultHeight
}

// DisplaySizes lists the recognized preset names.
func DisplaySizes() []string {
	return []string{"128x64", "96x64", "128x32", "64x48", "custom"}
}

// ParseSize parses an explicit "WxH" size string.
func ParseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, expected WxH", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %v", s, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %v", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return w, h, nil
}
