package meta

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/1F47E/go-oledreel/internal/config"
)

// Metadata describes one generated sketch: where it came from and what it
// contains. The ID drives the conventional download filename.
type Metadata struct {
	ID        string
	Source    string
	Width     int
	Height    int
	Fps       float64
	Frames    int
	Library   string
	CreatedAt time.Time
}

func New(source string, width, height int, fps float64, frames int, library string) Metadata {
	return Metadata{
		ID:        uuid.NewString()[:8],
		Source:    filepath.Base(source),
		Width:     width,
		Height:    height,
		Fps:       fps,
		Frames:    frames,
		Library:   library,
		CreatedAt: time.Now(),
	}
}

// Filename is the conventional sketch name, video_to_oled_<id>.ino.
func (m Metadata) Filename() string {
	return config.SketchFilePrefix + m.ID + config.SketchFileExt
}

func (m Metadata) Print() string {
	return fmt.Sprintf("%s: %s %dx%d, %d frames, %.1f fps (%s)",
		m.ID, m.Source, m.Width, m.Height, m.Frames, m.Fps, m.Library)
}
