package engine

import (
	"fmt"
	"os"
)

// Host resolves file contents for the service. It exists so inline snippets
// can be analyzed under a virtual filename without touching the filesystem.
type Host interface {
	ReadFile(path string) ([]byte, error)
}

// DiskHost reads files from the filesystem.
type DiskHost struct{}

func (DiskHost) ReadFile(path string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return content, nil
}

// OverlayHost serves fixed in-memory content for one path and defers
// everything else to a fallback host.
type OverlayHost struct {
	path     string
	content  []byte
	fallback Host
}

func NewOverlayHost(path string, content []byte, fallback Host) *OverlayHost {
	return &OverlayHost{path: path, content: content, fallback: fallback}
}

func (h *OverlayHost) ReadFile(path string) ([]byte, error) {
	if path == h.path {
		return h.content, nil
	}
	if h.fallback == nil {
		return nil, fmt.Errorf("file %q not present in overlay", path)
	}
	return h.fallback.ReadFile(path)
}
