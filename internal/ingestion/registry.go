package ingestion

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/charge_notifier/internal/domain"
)

const KindCSV = "csv"

// Upload is a named byte stream handed to a processor.
type Upload struct {
	Filename string
	Content  io.Reader
}

type Processor interface {
	Ingest(ctx context.Context, upload Upload) (*domain.IngestReport, error)
}

// Registry resolves processors by file type discriminator.
type Registry struct {
	processors map[string]Processor
}

func NewRegistry() *Registry {
	return &Registry{processors: make(map[string]Processor)}
}

func (r *Registry) Register(kind string, processor Processor) {
	r.processors[normalizeKind(kind)] = processor
}

func (r *Registry) Processor(kind string) (Processor, error) {
	processor, ok := r.processors[normalizeKind(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, kind)
	}

	return processor, nil
}

func (r *Registry) Ingest(ctx context.Context, kind string, upload Upload) (*domain.IngestReport, error) {
	processor, err := r.Processor(kind)
	if err != nil {
		return nil, err
	}

	return processor.Ingest(ctx, upload)
}

// KindFromFilename returns the extension of filename without the leading dot.
func KindFromFilename(filename string) string {
	return normalizeKind(filepath.Ext(filename))
}

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(kind), "."))
}
