// Package mailer delivers charge notices. The only transport so far writes the
// message to the log.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kurochkinivan/charge_notifier/internal/infrastructure/storage"
)

type Downloader interface {
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}

type LogMailer struct {
	log       *slog.Logger
	documents Downloader
	sender    string
}

func NewLogMailer(log *slog.Logger, documents Downloader, sender string) *LogMailer {
	return &LogMailer{
		log:       log,
		documents: documents,
		sender:    sender,
	}
}

// Deliver attaches the document stored under reference and "sends" it to email.
// A missing document is reported as not delivered.
func (m *LogMailer) Deliver(ctx context.Context, reference, email string) (_ bool, err error) {
	doc, err := m.documents.Download(ctx, reference)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			m.log.WarnContext(ctx, "document to deliver is missing", slog.String("reference", reference))
			return false, nil
		}
		return false, fmt.Errorf("failed to load document %s: %w", reference, err)
	}
	defer func() { err = errors.Join(err, doc.Close()) }()

	size, err := io.Copy(io.Discard, doc)
	if err != nil {
		return false, fmt.Errorf("failed to read document %s: %w", reference, err)
	}

	m.log.InfoContext(ctx, "charge notice sent",
		slog.String("from", m.sender),
		slog.String("to", email),
		slog.String("attachment", reference),
		slog.Int64("size", size),
	)

	return true, nil
}
