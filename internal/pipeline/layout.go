package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// Layout names the directories a watched file moves through: the watch directory,
// then processing while it is ingested, then ingested or rejected.
type Layout struct {
	Watch      string
	Processing string
	Ingested   string
	Rejected   string
}

func NewLayout(watchDir, archiveDir string) Layout {
	if archiveDir == "" {
		archiveDir = filepath.Join(watchDir, "archive")
	}

	return Layout{
		Watch:      watchDir,
		Processing: filepath.Join(archiveDir, "processing"),
		Ingested:   filepath.Join(archiveDir, "ingested"),
		Rejected:   filepath.Join(archiveDir, "rejected"),
	}
}

func (l Layout) Ensure() error {
	for _, dir := range []string{l.Watch, l.Processing, l.Ingested, l.Rejected} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}
	return nil
}

func move(path, dir string) (string, error) {
	dst := filepath.Join(dir, filepath.Base(path))
	if err := os.Rename(path, dst); err != nil {
		return "", fmt.Errorf("failed to move %q to %q: %w", path, dir, err)
	}
	return dst, nil
}
