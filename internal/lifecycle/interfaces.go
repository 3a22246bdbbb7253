package lifecycle

import (
	"context"

	"github.com/google/uuid"
	"github.com/kurochkinivan/charge_notifier/internal/domain"
)

type ChargeRepository interface {
	ChargeByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Charge, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, errorMessage *string, attempts int) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Generator renders the notice for a charge and returns a reference the deliverer understands.
type Generator interface {
	Generate(ctx context.Context, charge *domain.Charge) (string, error)
}

// Deliverer sends the referenced document to email. A false result without an
// error means the recipient was not reached.
type Deliverer interface {
	Deliver(ctx context.Context, reference, email string) (bool, error)
}
