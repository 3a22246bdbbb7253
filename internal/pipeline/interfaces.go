package pipeline

import (
	"context"

	"github.com/kurochkinivan/charge_notifier/internal/domain"
	"github.com/kurochkinivan/charge_notifier/internal/ingestion"
)

type Ingester interface {
	Ingest(ctx context.Context, kind string, upload ingestion.Upload) (*domain.IngestReport, error)
}
