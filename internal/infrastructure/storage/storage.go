// Package storage keeps generated charge documents in a local directory or an
// Azure Blob Storage container.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kurochkinivan/charge_notifier/internal/domain"
)

const (
	DriverLocal = "local"
	DriverAzure = "azure"
)

var (
	ErrNotFound   = fmt.Errorf("document %w", domain.ErrNotFound)
	ErrEmptyKey   = errors.New("storage key must not be empty")
	ErrInvalidKey = errors.New("storage key contains invalid path segment")
)

type Storage interface {
	// Init prepares the backing directory or container.
	Init(ctx context.Context) error
	Upload(ctx context.Context, key string, r io.Reader, contentType string) error
	// Download returns ErrNotFound if nothing is stored under key. The caller closes the reader.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}

type Config struct {
	Driver                string
	Directory             string
	AzureConnectionString string
	AzureContainer        string
}

func New(log *slog.Logger, cfg Config) (Storage, error) {
	switch cfg.Driver {
	case DriverLocal, "":
		return NewLocal(log, cfg.Directory), nil
	case DriverAzure:
		return NewAzure(log, cfg.AzureConnectionString, cfg.AzureContainer)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}
