package sampler

import (
	"math"
	"testing"
)

func TestSampleFrameCount(t *testing.T) {
	testCases := []struct {
		name     string
		duration float64
		opts     Options
		want     int
	}{
		{
			name:     "target frames capped by max frames",
			duration: 10,
			opts:     Options{TargetFps: 30, MaxFrames: 20, TargetFrames: 50},
			want:     20,
		},
		{
			name:     "target frames below max frames",
			duration: 10,
			opts:     Options{TargetFps: 30, MaxFrames: 100, TargetFrames: 50},
			want:     50,
		},
		{
			name:     "fps driven count",
			duration: 2,
			opts:     Options{TargetFps: 10, MaxFrames: 300},
			want:     20,
		},
		{
			name:     "fps driven count capped",
			duration: 10,
			opts:     Options{TargetFps: 30, MaxFrames: 40},
			want:     40,
		},
		{
			name:     "degenerate duration still yields one frame",
			duration: 0,
			opts:     Options{TargetFps: 30, MaxFrames: 300},
			want:     1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := Sample(tc.duration, tc.opts)
			if len(got) != tc.want {
				t.Errorf("got %d timestamps, want %d", len(got), tc.want)
			}
		})
	}
}

func TestSampleEffectiveFps(t *testing.T) {
	// 10 frames over 2 seconds plays back at 5 fps regardless of target
	timestamps, fps := Sample(2, Options{TargetFps: 30, MaxFrames: 300, TargetFrames: 10})
	if len(timestamps) != 10 {
		t.Fatalf("got %d timestamps, want 10", len(timestamps))
	}
	if fps != 5 {
		t.Errorf("got fps %v, want 5", fps)
	}
}

func TestSampleFpsClamp(t *testing.T) {
	// targets above 30 fps are clamped before anything else
	_, fps := Sample(1, Options{TargetFps: 120, MaxFrames: 300})
	if fps > 30 {
		t.Errorf("got fps %v, want <= 30", fps)
	}
	// and below 1 fps too
	_, fps = Sample(10, Options{TargetFps: 0.1, MaxFrames: 300})
	if fps < 1 {
		t.Errorf("got fps %v, want >= 1", fps)
	}
}

func TestSampleTimestampsOrdered(t *testing.T) {
	timestamps, fps := Sample(7.3, Options{TargetFps: 12, MaxFrames: 300})
	step := 1.0 / fps
	for i, ts := range timestamps {
		if ts < 0 || ts >= 7.3 {
			t.Fatalf("timestamp %d = %v out of [0, duration)", i, ts)
		}
		want := float64(i) * step
		if math.Abs(ts-want) > 1e-9 {
			t.Errorf("timestamp %d = %v, want %v", i, ts, want)
		}
	}
}
