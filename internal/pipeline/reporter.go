package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/charge_notifier/internal/domain"
)

const reportSuffix = ".report.json"

type report struct {
	*domain.IngestReport

	Filename string `json:"filename"`
	Error    string `json:"error,omitempty"`
}

// Reporter files every imported file away and writes its report next to it.
type Reporter struct {
	log     *slog.Logger
	layout  Layout
	results <-chan *domain.ImportResult
}

func NewReporter(log *slog.Logger, layout Layout, results <-chan *domain.ImportResult) *Reporter {
	return &Reporter{
		log:     log,
		layout:  layout,
		results: results,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case result, ok := <-r.results:
			if !ok {
				return nil
			}

			log := r.log.With(slog.String("filename", filepath.Base(result.Filename)))

			if err := r.processResult(ctx, log, result); err != nil {
				log.ErrorContext(ctx, "failed to file import result", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Reporter) processResult(ctx context.Context, log *slog.Logger, result *domain.ImportResult) error {
	dir, retry := r.destination(result.Error)

	if retry {
		// ничего не закоммичено, файл вернется в следующий цикл сканирования
		if _, err := move(result.Filename, r.layout.Watch); err != nil {
			return err
		}

		log.WarnContext(ctx, "import failed, file returned to watch directory")
		return nil
	}

	dst, err := move(result.Filename, dir)
	if err != nil {
		return err
	}

	if err := writeReport(dst, result); err != nil {
		return err
	}

	if result.Report != nil {
		log.InfoContext(ctx, "file imported",
			slog.String("file_id", result.Report.FileID.String()),
			slog.Int("total_rows", result.Report.TotalRows),
			slog.Int("processed_rows", result.Report.ProcessedRows),
			slog.Int("failed_rows", result.Report.FailedRows),
			slog.Int("duplicate_rows", result.Report.DuplicateRows),
		)
	} else {
		log.InfoContext(ctx, "file archived", slog.String("dir", dir))
	}

	return nil
}

// destination picks where a file goes. Duplicates count as ingested. A store failure
// before any batch was committed leaves nothing behind, so the file is retried.
func (r *Reporter) destination(err error) (dir string, retry bool) {
	var storeErr *domain.StoreError

	switch {
	case err == nil, errors.Is(err, domain.ErrDuplicateFile):
		return r.layout.Ingested, false
	case errors.As(err, &storeErr) && storeErr.CommittedBatches == 0:
		return r.layout.Watch, true
	default:
		return r.layout.Rejected, false
	}
}

func writeReport(path string, result *domain.ImportResult) error {
	rep := report{
		IngestReport: result.Report,
		Filename:     filepath.Base(result.Filename),
	}
	if result.Error != nil {
		rep.Error = result.Error.Error()
	}

	content, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := os.WriteFile(path+reportSuffix, content, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
