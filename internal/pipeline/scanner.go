package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Scanner struct {
	log          *slog.Logger
	layout       Layout
	scanInterval time.Duration
	files        chan<- string
}

func NewScanner(
	log *slog.Logger,
	layout Layout,
	scanInterval time.Duration,
	files chan<- string,
) *Scanner {
	return &Scanner{
		log:          log,
		layout:       layout,
		scanInterval: scanInterval,
		files:        files,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	// файлы, оставшиеся в processing после падения, отправляем заново
	if err := s.scanDir(ctx, s.layout.Processing, false); err != nil {
		s.log.ErrorContext(ctx, "failed to recover interrupted files", slog.String("err", err.Error()))
	}

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			err := s.scanDir(ctx, s.layout.Watch, true)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanDir(ctx context.Context, dir string, claim bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	for _, entry := range entries {
		if !accepted(entry) {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		if claim {
			path, err = move(path, s.layout.Processing)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to claim file, skipping",
					slog.String("filename", entry.Name()),
					slog.String("err", err.Error()),
				)
				continue
			}

			s.log.DebugContext(ctx, "claimed file", slog.String("filename", entry.Name()))
		}

		select {
		case s.files <- path:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// accepted skips directories and hidden files. Unsupported types are left to the
// importer so they end up in rejected.
func accepted(entry os.DirEntry) bool {
	return !entry.IsDir() && !strings.HasPrefix(entry.Name(), ".")
}
