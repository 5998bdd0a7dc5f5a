// Package server exposes the conversion pipeline as an HTTP API:
// upload a video, get back a sketch ID, download the generated .ino.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/1F47E/go-oledreel/internal/config"
	"github.com/1F47E/go-oledreel/internal/core"
	"github.com/1F47E/go-oledreel/internal/gen"
	"github.com/1F47E/go-oledreel/internal/logger"
	"github.com/1F47E/go-oledreel/internal/meta"
	"github.com/1F47E/go-oledreel/internal/raster"
)

var log = logger.Log

// maxUploadBytes bounds the multipart form, clips are seconds not minutes.
const maxUploadBytes = 256 << 20

type sketch struct {
	Meta meta.Metadata
	Text string
}

// sketchStore keeps generated sketches in memory, keyed by sketch ID.
// Requests are independent: a client that re-converts with new options
// simply downloads the newer ID and discards the stale one.
type sketchStore struct {
	mu       sync.RWMutex
	sketches map[string]*sketch
}

func newSketchStore() *sketchStore {
	return &sketchStore{sketches: make(map[string]*sketch)}
}

func (s *sketchStore) add(sk *sketch) {
	s.mu.Lock()
	s.sketches[sk.Meta.ID] = sk
	s.mu.Unlock()
}

func (s *sketchStore) get(id string) (*sketch, bool) {
	s.mu.RLock()
	sk, ok := s.sketches[id]
	s.mu.RUnlock()
	return sk, ok
}

type srv struct {
	store *sketchStore
}

// Run starts the API server and blocks until the listener fails or the
// context is cancelled.
func Run(ctx context.Context, addr string) error {
	s := &srv{store: newSketchStore()}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/convert", s.handleConvert)
	mux.HandleFunc("/api/sketch/", s.handleSketch)
	mux.HandleFunc("/api/libraries", s.handleLibraries)
	mux.HandleFunc("/api/sizes", s.handleSizes)

	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()

	log.Infof("Listening on %s", addr)
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		// cancelled context, not a failure
		return nil
	}
	return err
}

type convertResponse struct {
	ID       string  `json:"id"`
	Filename string  `json:"filename"`
	Frames   int     `json:"frames"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Fps      float64 `json:"fps"`
	Duration float64 `json:"duration"`
	Library  string  `json:"library"`
}

func (s *srv) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("bad upload: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		http.Error(w, "missing video file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// the decode primitive works on files, spool the upload to disk
	tmp, err := os.CreateTemp("", "oledreel-upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		http.Error(w, "cannot store upload", http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		http.Error(w, "cannot store upload", http.StatusInternalServerError)
		return
	}
	tmp.Close()

	opts, lib, err := optionsFromForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := core.NewCore(r.Context()).ProcessVideo(tmp.Name(), opts)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to process video: %v", err), http.StatusUnprocessableEntity)
		return
	}
	text, err := gen.Generate(res.FramesPacked, res.Width, res.Height, res.Fps, lib)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to generate sketch: %v", err), http.StatusInternalServerError)
		return
	}

	m := meta.New(header.Filename, res.Width, res.Height, res.Fps, len(res.FramesPacked), lib.String())
	s.store.add(&sketch{Meta: m, Text: text})
	log.Infof("Converted %s", m.Print())

	writeJSON(w, convertResponse{
		ID:       m.ID,
		Filename: m.Filename(),
		Frames:   m.Frames,
		Width:    m.Width,
		Height:   m.Height,
		Fps:      m.Fps,
		Duration: res.Duration,
		Library:  m.Library,
	})
}

func (s *srv) handleSketch(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/sketch/")
	sk, ok := s.store.get(id)
	if !ok {
		http.Error(w, "sketch not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sk.Meta.Filename()))
	_, _ = io.WriteString(w, sk.Text)
}

func (s *srv) handleLibraries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, gen.Libraries())
}

func (s *srv) handleSizes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, config.DisplaySizes())
}

// optionsFromForm builds ProcessOptions from multipart fields. Absent
// fields keep the platform defaults, threshold 128 included.
func optionsFromForm(r *http.Request) (core.ProcessOptions, gen.Library, error) {
	opts := core.DefaultOptions()

	if v := r.FormValue("display_size"); v != "" {
		opts.Width, opts.Height = config.ParseDisplaySize(v)
	}
	if v := r.FormValue("width"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, 0, fmt.Errorf("bad width %q", v)
		}
		opts.Width = n
	}
	if v := r.FormValue("height"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, 0, fmt.Errorf("bad height %q", v)
		}
		opts.Height = n
	}
	opts.Orientation = raster.ParseOrientation(r.FormValue("orientation"))
	if v := r.FormValue("target_fps"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, 0, fmt.Errorf("bad target_fps %q", v)
		}
		opts.TargetFps = f
	}
	if v := r.FormValue("max_frames"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, 0, fmt.Errorf("bad max_frames %q", v)
		}
		opts.MaxFrames = n
	}
	if v := r.FormValue("target_frames"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, 0, fmt.Errorf("bad target_frames %q", v)
		}
		opts.TargetFrames = n
	}
	if v := r.FormValue("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 255 {
			return opts, 0, fmt.Errorf("bad threshold %q", v)
		}
		opts.Threshold = n
	}

	return opts, gen.ParseLibrary(r.FormValue("library")), nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Debugf("writing response: %v", err)
	}
}
