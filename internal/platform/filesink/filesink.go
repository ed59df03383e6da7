// Package filesink saves screenshots as PNG files.
package filesink

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/anthonynsimon/bild/imgio"
)

// Sink implements picker.ClipboardWriter by writing each image to a new file
// named screenshot-<timestamp>.png in Dir.
type Sink struct {
	Dir string

	mu   sync.Mutex
	last string
	now  func() time.Time
}

// New returns a Sink that writes into dir, creating it if needed.
func New(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create screenshot dir: %w", err)
	}
	return &Sink{Dir: dir, now: time.Now}, nil
}

// WriteImage saves img. Names that would collide with the previous file get a
// numeric suffix.
func (s *Sink) WriteImage(img image.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.nextPath()
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save screenshot: %w", err)
	}
	s.last = path
	return nil
}

// Last returns the path of the most recently written file.
func (s *Sink) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Sink) nextPath() string {
	stamp := s.now().Format("20060102-150405.000")
	base := filepath.Join(s.Dir, "screenshot-"+stamp)

	path := base + ".png"
	for i := 2; fileExists(path); i++ {
		path = fmt.Sprintf("%s-%d.png", base, i)
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
