package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/charge_notifier/internal/domain"
	"github.com/kurochkinivan/charge_notifier/internal/ingestion"
)

type Importer struct {
	log      *slog.Logger
	files    <-chan string
	results  chan<- *domain.ImportResult
	ingester Ingester
}

func NewImporter(
	log *slog.Logger,
	files <-chan string,
	results chan<- *domain.ImportResult,
	ingester Ingester,
) *Importer {
	return &Importer{
		log:      log,
		files:    files,
		results:  results,
		ingester: ingester,
	}
}

func (i *Importer) Run(ctx context.Context) error {
	defer close(i.results)

	for {
		select {
		case path, ok := <-i.files:
			if !ok {
				return nil
			}

			log := i.log.With(slog.String("filename", filepath.Base(path)))
			log.DebugContext(ctx, "received file to import")

			report, err := i.importFile(ctx, path)
			if err != nil {
				log.ErrorContext(ctx, "failed to import file", slog.String("err", err.Error()))
			}

			select {
			case i.results <- &domain.ImportResult{Filename: path, Report: report, Error: err}:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (i *Importer) importFile(ctx context.Context, path string) (_ *domain.IngestReport, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return i.ingester.Ingest(ctx, ingestion.KindFromFilename(path), ingestion.Upload{
		Filename: filepath.Base(path),
		Content:  f,
	})
}
