package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kurochkinivan/charge_notifier/internal/domain"
	"github.com/kurochkinivan/charge_notifier/internal/queue"
)

var (
	errSkipped          = errors.New("charge is not in an expected state")
	errRecipientMissing = errors.New("recipient was not reached")
)

// RetryableError is returned when an attempt failed and the charge was marked FAILED.
type RetryableError struct {
	ChargeID uuid.UUID
	Attempt  int
	Err      error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("charge %s attempt %d failed: %v", e.ChargeID, e.Attempt, e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

type Worker struct {
	log        *slog.Logger
	charges    ChargeRepository
	transactor Transactor
	generator  Generator
	deliverer  Deliverer
}

func NewWorker(
	log *slog.Logger,
	charges ChargeRepository,
	transactor Transactor,
	generator Generator,
	deliverer Deliverer,
) *Worker {
	return &Worker{
		log:        log,
		charges:    charges,
		transactor: transactor,
		generator:  generator,
		deliverer:  deliverer,
	}
}

// Process runs one attempt of the charge lifecycle. Tasks for missing charges and
// tasks that are stale or duplicated are dropped without error.
func (w *Worker) Process(ctx context.Context, task queue.Task) error {
	log := w.log.With(
		slog.String("charge_id", task.ChargeID.String()),
		slog.Int("attempt", task.Attempt),
	)

	charge, err := w.transition(ctx, task.ChargeID, claimable(task.Attempt), domain.StatusProcessing, nil, task.Attempt)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		log.WarnContext(ctx, "charge not found, dropping task")
		return nil
	case errors.Is(err, errSkipped):
		log.DebugContext(ctx, "charge already handled, dropping task")
		return nil
	case err != nil:
		return &RetryableError{ChargeID: task.ChargeID, Attempt: task.Attempt, Err: fmt.Errorf("failed to claim charge: %w", err)}
	}

	log.DebugContext(ctx, "charge claimed")

	if err := w.notify(ctx, charge); err != nil {
		return w.fail(ctx, log, task, err)
	}

	_, err = w.transition(ctx, task.ChargeID, ownedBy(task.Attempt), domain.StatusProcessed, nil, task.Attempt)
	if err != nil {
		return w.fail(ctx, log, task, fmt.Errorf("failed to mark charge processed: %w", err))
	}

	log.InfoContext(ctx, "charge processed")

	return nil
}

func (w *Worker) notify(ctx context.Context, charge *domain.Charge) error {
	reference, err := w.generator.Generate(ctx, charge)
	if err != nil {
		var genErr *domain.GenerationError
		if errors.As(err, &genErr) {
			return err
		}
		return &domain.GenerationError{Err: err}
	}

	delivered, err := w.deliverer.Deliver(ctx, reference, charge.Email)
	if err != nil {
		var deliveryErr *domain.DeliveryError
		if errors.As(err, &deliveryErr) {
			return err
		}
		return &domain.DeliveryError{Recipient: charge.Email, Err: err}
	}

	if !delivered {
		return &domain.DeliveryError{Recipient: charge.Email, Err: errRecipientMissing}
	}

	return nil
}

// fail records cause on the charge. The write outlives ctx so a shutdown does not
// leave the row in PROCESSING.
func (w *Worker) fail(ctx context.Context, log *slog.Logger, task queue.Task, cause error) error {
	log.ErrorContext(ctx, "charge attempt failed", slog.String("err", cause.Error()))

	msg := cause.Error()
	_, err := w.transition(context.WithoutCancel(ctx), task.ChargeID, ownedBy(task.Attempt), domain.StatusFailed, &msg, task.Attempt)
	if err != nil {
		log.ErrorContext(ctx, "failed to mark charge failed", slog.String("err", err.Error()))
		cause = errors.Join(cause, err)
	}

	return &RetryableError{ChargeID: task.ChargeID, Attempt: task.Attempt, Err: cause}
}

// transition locks the charge, checks allowed and writes the new state in one transaction.
func (w *Worker) transition(
	ctx context.Context,
	id uuid.UUID,
	allowed func(*domain.Charge) bool,
	status domain.Status,
	errorMessage *string,
	attempts int,
) (*domain.Charge, error) {
	var charge *domain.Charge

	err := w.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		c, err := w.charges.ChargeByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if !allowed(c) {
			return errSkipped
		}

		if err := w.charges.UpdateStatus(ctx, id, status, errorMessage, attempts); err != nil {
			return err
		}

		c.Status = status
		c.ErrorMessage = errorMessage
		c.Attempts = attempts
		charge = c

		return nil
	})
	if err != nil {
		return nil, err
	}

	return charge, nil
}

// claimable accepts a pending charge or a failed one being retried, as long as no
// attempt at least as recent has already claimed it.
func claimable(attempt int) func(*domain.Charge) bool {
	return func(c *domain.Charge) bool {
		if c.Attempts >= attempt {
			return false
		}

		switch c.Status {
		case domain.StatusPending:
			return true
		case domain.StatusFailed:
			return attempt > 1
		default:
			return false
		}
	}
}

func ownedBy(attempt int) func(*domain.Charge) bool {
	return func(c *domain.Charge) bool {
		return c.Status == domain.StatusProcessing && c.Attempts == attempt
	}
}
