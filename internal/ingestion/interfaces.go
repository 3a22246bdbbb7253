package ingestion

import (
	"context"

	"github.com/google/uuid"
	"github.com/kurochkinivan/charge_notifier/internal/domain"
)

type FileRepository interface {
	FileByFingerprint(ctx context.Context, fingerprint string) (*domain.File, error)
	CreateFile(ctx context.Context, name, fingerprint string) (*domain.File, error)
	DeleteFile(ctx context.Context, id uuid.UUID) error
}

type ChargeRepository interface {
	SaveCharges(ctx context.Context, charges ...*domain.Charge) (int64, error)
	PendingChargesByFile(ctx context.Context, fileID uuid.UUID) ([]*domain.Charge, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type TaskEnqueuer interface {
	Enqueue(ctx context.Context, chargeID uuid.UUID) error
}
