package ingestion

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/charge_notifier/internal/domain"
	"github.com/kurochkinivan/charge_notifier/internal/fingerprint"
)

const DefaultBatchSize = 10_000

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

type CSVProcessor struct {
	log        *slog.Logger
	batchSize  int
	files      FileRepository
	charges    ChargeRepository
	transactor Transactor
	enqueuer   TaskEnqueuer
}

func NewCSVProcessor(
	log *slog.Logger,
	batchSize int,
	files FileRepository,
	charges ChargeRepository,
	transactor Transactor,
	enqueuer TaskEnqueuer,
) *CSVProcessor {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &CSVProcessor{
		log:        log,
		batchSize:  batchSize,
		files:      files,
		charges:    charges,
		transactor: transactor,
		enqueuer:   enqueuer,
	}
}

// Ingest stores every valid row of upload as a pending charge and enqueues a
// lifecycle task per stored charge. Invalid rows are reported, not returned as errors.
func (p *CSVProcessor) Ingest(ctx context.Context, upload Upload) (*domain.IngestReport, error) {
	content, err := fingerprint.Seekable(upload.Content)
	if err != nil {
		return nil, err
	}

	digest, err := fingerprint.Compute(content)
	if err != nil {
		return nil, err
	}

	log := p.log.With(
		slog.String("filename", upload.Filename),
		slog.String("fingerprint", digest.String()),
	)

	if err := p.ensureNotIngested(ctx, digest.String()); err != nil {
		return nil, err
	}

	dec, err := newDecoder(content)
	if err != nil {
		return nil, err
	}

	file, err := p.files.CreateFile(ctx, upload.Filename, digest.String())
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateFile) {
			return nil, err
		}
		return nil, &domain.StoreError{Op: "create file", Err: err}
	}

	log = log.With(slog.String("file_id", file.ID.String()))
	log.InfoContext(ctx, "ingesting file")

	report := domain.NewIngestReport()
	report.FileID = file.ID

	batches, err := p.insertRows(ctx, log, dec, file, report)
	if err != nil {
		return nil, p.abort(ctx, log, file, batches, err)
	}

	if err := p.enqueuePending(ctx, log, file, report); err != nil {
		return nil, &domain.StoreError{Op: "find pending charges", CommittedBatches: batches, Err: err}
	}

	log.InfoContext(ctx, "file ingested",
		slog.Int("total_rows", report.TotalRows),
		slog.Int("processed_rows", report.ProcessedRows),
		slog.Int("failed_rows", report.FailedRows),
		slog.Int("duplicate_rows", report.DuplicateRows),
		slog.Int("batches", batches),
	)

	return report, nil
}

func (p *CSVProcessor) ensureNotIngested(ctx context.Context, digest string) error {
	_, err := p.files.FileByFingerprint(ctx, digest)
	switch {
	case err == nil:
		return domain.ErrDuplicateFile
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return &domain.StoreError{Op: "find file by fingerprint", Err: err}
	}
}

// insertRows streams data rows into fixed-size batches. It returns the number of
// batches committed, which is meaningful on error too.
func (p *CSVProcessor) insertRows(
	ctx context.Context,
	log *slog.Logger,
	dec *csvutil.Decoder,
	file *domain.File,
	report *domain.IngestReport,
) (int, error) {
	batches := 0
	batch := make([]*domain.Charge, 0, p.batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}

		log.DebugContext(ctx, "inserting batch", slog.Int("batch", batches+1), slog.Int("size", len(batch)))

		if err := p.saveBatch(ctx, batch, report); err != nil {
			return err
		}

		batches++
		batch = batch[:0]

		return nil
	}

	if dec == nil {
		return 0, nil
	}

	for {
		var raw domain.RawCharge

		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			break
		}

		report.TotalRows++
		row := report.TotalRows

		if err != nil {
			if !isRowError(err) {
				return batches, &readError{err: fmt.Errorf("%w: failed to read row %d: %w", domain.ErrMalformedFile, row, err)}
			}

			report.AddFailure(&domain.ValidationError{Row: row, Cause: err})
			continue
		}

		record, err := ValidateRow(row, raw)
		if err != nil {
			var validationErr *domain.ValidationError
			if !errors.As(err, &validationErr) {
				validationErr = &domain.ValidationError{Row: row, Cause: err}
			}

			log.DebugContext(ctx, "rejected row", slog.Int("row", row), slog.String("err", err.Error()))
			report.AddFailure(validationErr)
			continue
		}

		batch = append(batch, domain.NewPendingCharge(file.ID, record))

		if len(batch) >= p.batchSize {
			if err := flush(); err != nil {
				return batches, err
			}
		}
	}

	return batches, flush()
}

func (p *CSVProcessor) saveBatch(ctx context.Context, batch []*domain.Charge, report *domain.IngestReport) error {
	var inserted int64

	err := p.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		inserted, err = p.charges.SaveCharges(ctx, batch...)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save batch: %w", err)
	}

	report.ProcessedRows += len(batch)
	report.DuplicateRows += len(batch) - int(inserted)

	return nil
}

func (p *CSVProcessor) enqueuePending(
	ctx context.Context,
	log *slog.Logger,
	file *domain.File,
	report *domain.IngestReport,
) error {
	pending, err := p.charges.PendingChargesByFile(ctx, file.ID)
	if err != nil {
		return err
	}

	for _, charge := range pending {
		report.ChargeIDs = append(report.ChargeIDs, charge.ID)

		// charges left pending are picked up again on the next startup
		if err := p.enqueuer.Enqueue(ctx, charge.ID); err != nil {
			log.ErrorContext(ctx, "failed to enqueue charge",
				slog.String("charge_id", charge.ID.String()),
				slog.String("err", err.Error()),
			)
		}
	}

	log.DebugContext(ctx, "enqueued pending charges", slog.Int("count", len(pending)))

	return nil
}

// abort removes the file record when no batch was committed, so a failed ingestion
// leaves nothing behind. Committed batches are kept.
func (p *CSVProcessor) abort(ctx context.Context, log *slog.Logger, file *domain.File, batches int, cause error) error {
	log.ErrorContext(ctx, "ingestion aborted",
		slog.Int("committed_batches", batches),
		slog.String("err", cause.Error()),
	)

	if batches == 0 {
		if err := p.files.DeleteFile(context.WithoutCancel(ctx), file.ID); err != nil {
			cause = errors.Join(cause, fmt.Errorf("failed to delete file record: %w", err))
		}
	}

	var readErr *readError
	if errors.As(cause, &readErr) {
		return cause
	}

	return &domain.StoreError{Op: "save charges", CommittedBatches: batches, Err: cause}
}

// newDecoder reads the header row. A nil decoder means the content is empty.
func newDecoder(content io.Reader) (*csvutil.Decoder, error) {
	buffered := bufio.NewReader(content)
	if prefix, err := buffered.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = buffered.Discard(len(byteOrderMark))
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(reader)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", domain.ErrMalformedFile, err)
	}

	if err := checkHeader(dec.Header()); err != nil {
		return nil, err
	}

	return dec, nil
}

func checkHeader(header []string) error {
	required, err := csvutil.Header(domain.RawCharge{}, "csv")
	if err != nil {
		return fmt.Errorf("failed to build header: %w", err)
	}

	var missing []string
	for _, column := range required {
		if !slices.Contains(header, column) {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", domain.ErrMissingColumns, missing)
	}

	return nil
}

func isRowError(err error) bool {
	var parseErr *csv.ParseError
	return errors.Is(err, csvutil.ErrFieldCount) || errors.As(err, &parseErr)
}

type readError struct {
	err error
}

func (e *readError) Error() string { return e.err.Error() }
func (e *readError) Unwrap() error { return e.err }
