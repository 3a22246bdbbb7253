// Package queue runs lifecycle tasks on a fixed pool of workers and reschedules
// failed tasks with a fixed delay until the attempt budget is spent.
//
// Tasks live in memory only. Work lost on shutdown is recovered from the charge
// store on the next start.
package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 60 * time.Second
	DefaultConcurrency = 4
)

var ErrClosed = errors.New("queue is closed")

// Task asks for one attempt at advancing a charge. Attempt starts at 1.
type Task struct {
	ChargeID uuid.UUID
	Attempt  int
}

type Handler interface {
	Process(ctx context.Context, task Task) error
}

type HandlerFunc func(ctx context.Context, task Task) error

func (f HandlerFunc) Process(ctx context.Context, task Task) error {
	return f(ctx, task)
}

type Config struct {
	Concurrency int
	MaxAttempts int
	RetryDelay  time.Duration
}

type Queue struct {
	log     *slog.Logger
	cfg     Config
	handler Handler

	mu      sync.Mutex
	pending []Task
	closed  bool
	ready   chan struct{}
	retries sync.WaitGroup
}

func New(log *slog.Logger, cfg Config, handler Handler) *Queue {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	return &Queue{
		log:     log,
		cfg:     cfg,
		handler: handler,
		ready:   make(chan struct{}, 1),
	}
}

// Enqueue schedules the first attempt for chargeID.
func (q *Queue) Enqueue(ctx context.Context, chargeID uuid.UUID) error {
	return q.Push(ctx, Task{ChargeID: chargeID, Attempt: 1})
}

// Push schedules task as is. Used to resume charges whose earlier attempts were
// recorded in the store.
func (q *Queue) Push(ctx context.Context, task Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if task.Attempt < 1 {
		task.Attempt = 1
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.pending = append(q.pending, task)
	q.mu.Unlock()

	q.signal()

	return nil
}

func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.pending)
}

func (q *Queue) MaxAttempts() int {
	return q.cfg.MaxAttempts
}

// Run starts the workers and blocks until ctx is done.
func (q *Queue) Run(ctx context.Context) error {
	defer q.close()

	erg, ctx := errgroup.WithContext(ctx)

	for i := range q.cfg.Concurrency {
		erg.Go(func() error {
			return q.work(ctx, i+1)
		})
	}

	err := erg.Wait()
	q.retries.Wait()

	return err
}

func (q *Queue) work(ctx context.Context, worker int) error {
	log := q.log.With(slog.Int("worker", worker))

	for {
		task, ok := q.pop()
		if !ok {
			select {
			case <-q.ready:
				continue
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		q.handle(ctx, log, task)
	}
}

func (q *Queue) handle(ctx context.Context, log *slog.Logger, task Task) {
	log = log.With(
		slog.String("charge_id", task.ChargeID.String()),
		slog.Int("attempt", task.Attempt),
	)

	err := q.handler.Process(ctx, task)
	if err == nil {
		return
	}

	if ctx.Err() != nil {
		log.WarnContext(ctx, "task interrupted by shutdown", slog.String("err", err.Error()))
		return
	}

	if task.Attempt >= q.cfg.MaxAttempts {
		log.ErrorContext(ctx, "task failed, retry budget exhausted",
			slog.Int("max_attempts", q.cfg.MaxAttempts),
			slog.String("err", err.Error()),
		)
		return
	}

	log.WarnContext(ctx, "task failed, scheduling retry",
		slog.Duration("retry_delay", q.cfg.RetryDelay),
		slog.String("err", err.Error()),
	)

	q.retry(ctx, Task{ChargeID: task.ChargeID, Attempt: task.Attempt + 1})
}

func (q *Queue) retry(ctx context.Context, task Task) {
	q.retries.Add(1)

	go func() {
		defer q.retries.Done()

		timer := time.NewTimer(q.cfg.RetryDelay)
		defer timer.Stop()

		select {
		case <-timer.C:
			if err := q.Push(ctx, task); err != nil {
				q.log.DebugContext(ctx, "dropped retry",
					slog.String("charge_id", task.ChargeID.String()),
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
		}
	}()
}

func (q *Queue) pop() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return Task{}, false
	}

	task := q.pending[0]
	q.pending[0] = Task{}
	q.pending = q.pending[1:]

	// wake the next idle worker while work remains
	if len(q.pending) > 0 {
		q.signalLocked()
	}

	return task, true
}

func (q *Queue) signal() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.signalLocked()
}

func (q *Queue) signalLocked() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *Queue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
}
