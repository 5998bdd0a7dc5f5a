package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDisplaySize(t *testing.T) {
	testCases := []struct {
		name  string
		in    string
		wantW int
		wantH int
	}{
		{name: "128x64", in: "128x64", wantW: 128, wantH: 64},
		{name: "96x64", in: "96x64", wantW: 96, wantH: 64},
		{name: "128x32", in: "128x32", wantW: 128, wantH: 32},
		{name: "64x48", in: "64x48", wantW: 64, wantH: 48},
		{name: "custom falls back to default", in: "custom", wantW: 128, wantH: 64},
		{name: "unknown falls back to default", in: "320x240", wantW: 128, wantH: 64},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := ParseDisplaySize(tc.in)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("got %dx%d, want %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	w, h, err := ParseSize("72x40")
	if err != nil {
		t.Fatal(err)
	}
	if w != 72 || h != 40 {
		t.Errorf("got %dx%d, want 72x40", w, h)
	}

	for _, bad := range []string{"", "128", "0x64", "-1x64", "axb"} {
		if _, _, err := ParseSize(bad); err == nil {
			t.Errorf("ParseSize(%q) should fail", bad)
		}
	}
}

func TestLoadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	data := []byte(`display_size: 96x64
orientation: vertical
target_frames: 12
threshold: 90
library: u8g2
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPreset(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.DisplaySize != "96x64" {
		t.Errorf("got display_size %q", p.DisplaySize)
	}
	if p.Orientation != "vertical" {
		t.Errorf("got orientation %q", p.Orientation)
	}
	if p.TargetFrames != 12 {
		t.Errorf("got target_frames %d", p.TargetFrames)
	}
	if p.Threshold == nil || *p.Threshold != 90 {
		t.Errorf("got threshold %v", p.Threshold)
	}
	if p.Library != "u8g2" {
		t.Errorf("got library %q", p.Library)
	}
}

func TestLoadPresetAbsentThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte("display_size: 128x32\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadPreset(path)
	if err != nil {
		t.Fatal(err)
	}
	// absent threshold stays nil so callers keep the 128 default
	if p.Threshold != nil {
		t.Errorf("got threshold %v, want nil", *p.Threshold)
	}
}

func TestLoadPresetBadThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte("threshold: 300\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPreset(path); err == nil {
		t.Errorf("threshold 300 should fail")
	}
}
