package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/1F47E/go-oledreel/internal/meta"
)

func TestRunStopsCleanlyOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("got %v, want nil on shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestHandleSketchDownload(t *testing.T) {
	s := &srv{store: newSketchStore()}
	m := meta.New("clip.mp4", 128, 64, 5, 10, "adafruit_gfx_ssd1306")
	s.store.add(&sketch{Meta: m, Text: "void setup() {}\n"})

	req := httptest.NewRequest(http.MethodGet, "/api/sketch/"+m.ID, nil)
	rec := httptest.NewRecorder()
	s.handleSketch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/plain" {
		t.Errorf("got content type %q", got)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "video_to_oled_"+m.ID+".ino") {
		t.Errorf("got disposition %q", cd)
	}
	if rec.Body.String() != "void setup() {}\n" {
		t.Errorf("got body %q", rec.Body.String())
	}
}

func TestHandleSketchNotFound(t *testing.T) {
	s := &srv{store: newSketchStore()}
	req := httptest.NewRequest(http.MethodGet, "/api/sketch/deadbeef", nil)
	rec := httptest.NewRecorder()
	s.handleSketch(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", rec.Code)
	}
}

func TestHandleLibraries(t *testing.T) {
	s := &srv{store: newSketchStore()}
	rec := httptest.NewRecorder()
	s.handleLibraries(rec, httptest.NewRequest(http.MethodGet, "/api/libraries", nil))

	var libs []string
	if err := json.NewDecoder(rec.Body).Decode(&libs); err != nil {
		t.Fatal(err)
	}
	if len(libs) != 3 {
		t.Errorf("got %d libraries, want 3", len(libs))
	}
}

func TestOptionsFromForm(t *testing.T) {
	form := url.Values{}
	form.Set("display_size", "96x64")
	form.Set("orientation", "vertical")
	form.Set("target_frames", "15")
	form.Set("threshold", "90")
	form.Set("library", "u8g2")

	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	opts, lib, err := optionsFromForm(req)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Width != 96 || opts.Height != 64 {
		t.Errorf("got %dx%d, want 96x64", opts.Width, opts.Height)
	}
	if opts.TargetFrames != 15 {
		t.Errorf("got target frames %d, want 15", opts.TargetFrames)
	}
	if opts.Threshold != 90 {
		t.Errorf("got threshold %d, want 90", opts.Threshold)
	}
	if lib.String() != "u8g2" {
		t.Errorf("got library %v, want u8g2", lib)
	}
}

func TestOptionsFromFormDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	opts, lib, err := optionsFromForm(req)
	if err != nil {
		t.Fatal(err)
	}
	// absent fields keep the platform defaults
	if opts.Width != 128 || opts.Height != 64 {
		t.Errorf("got %dx%d, want 128x64", opts.Width, opts.Height)
	}
	if opts.Threshold != 128 {
		t.Errorf("got threshold %d, want 128", opts.Threshold)
	}
	if lib.String() != "adafruit_gfx_ssd1306" {
		t.Errorf("got library %v, want the ssd1306 fallback", lib)
	}
}

func TestOptionsFromFormBadValues(t *testing.T) {
	for _, kv := range [][2]string{
		{"threshold", "300"},
		{"threshold", "abc"},
		{"width", "wide"},
		{"target_fps", "fast"},
	} {
		form := url.Values{}
		form.Set(kv[0], kv[1])
		req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if _, _, err := optionsFromForm(req); err == nil {
			t.Errorf("%s=%s should fail", kv[0], kv[1])
		}
	}
}
