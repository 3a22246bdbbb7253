package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/charge_notifier/internal/config"
	v1 "github.com/kurochkinivan/charge_notifier/internal/controller/http/v1"
	"github.com/kurochkinivan/charge_notifier/internal/domain"
	"github.com/kurochkinivan/charge_notifier/internal/infrastructure/document"
	"github.com/kurochkinivan/charge_notifier/internal/infrastructure/mailer"
	"github.com/kurochkinivan/charge_notifier/internal/infrastructure/storage"
	"github.com/kurochkinivan/charge_notifier/internal/ingestion"
	"github.com/kurochkinivan/charge_notifier/internal/lifecycle"
	"github.com/kurochkinivan/charge_notifier/internal/pipeline"
	"github.com/kurochkinivan/charge_notifier/internal/queue"
	"github.com/kurochkinivan/charge_notifier/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer   = 100
	resultsBuffer = 100
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

type components struct {
	files    *postgresql.FilesRepository
	charges  *postgresql.ChargesRepository
	queue    *queue.Queue
	registry *ingestion.Registry
	storage  storage.Storage
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("watch_dir", a.cfg.App.WatchDirectory),
		slog.String("storage_driver", a.cfg.Storage.Driver),
		slog.Int("batch_size", a.cfg.App.BatchSize),
		slog.Int("worker_concurrency", a.cfg.Worker.Concurrency),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	documents, err := storage.New(a.log, storage.Config{
		Driver:                a.cfg.Storage.Driver,
		Directory:             a.cfg.Storage.Directory,
		AzureConnectionString: a.cfg.Storage.AzureConnectionString,
		AzureContainer:        a.cfg.Storage.AzureContainer,
	})
	if err != nil {
		return fmt.Errorf("failed to create document storage: %w", err)
	}

	if err := documents.Init(ctx); err != nil {
		return fmt.Errorf("failed to init document storage: %w", err)
	}

	filesRepository := postgresql.NewFilesRepository(pool)
	chargesRepository := postgresql.NewChargesRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	worker := lifecycle.NewWorker(
		a.log,
		chargesRepository,
		txManager,
		document.NewGenerator(a.log, documents),
		mailer.NewLogMailer(a.log, documents, a.cfg.Mailer.Sender),
	)

	tasks := queue.New(a.log, queue.Config{
		Concurrency: a.cfg.Worker.Concurrency,
		MaxAttempts: a.cfg.Worker.MaxAttempts,
		RetryDelay:  a.cfg.Worker.RetryDelay,
	}, worker)

	registry := ingestion.NewRegistry()
	registry.Register(ingestion.KindCSV, ingestion.NewCSVProcessor(
		a.log,
		a.cfg.App.BatchSize,
		filesRepository,
		chargesRepository,
		txManager,
		tasks,
	))

	if err := a.recover(ctx, chargesRepository, tasks); err != nil {
		return err
	}

	return a.start(ctx, components{
		files:    filesRepository,
		charges:  chargesRepository,
		queue:    tasks,
		registry: registry,
		storage:  documents,
	})
}

// recover requeues charges whose tasks were lost with the previous process.
func (a *App) recover(ctx context.Context, charges *postgresql.ChargesRepository, tasks *queue.Queue) error {
	reset, err := charges.ResetProcessingCharges(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset processing charges: %w", err)
	}

	resumable, err := charges.ResumableCharges(ctx, tasks.MaxAttempts())
	if err != nil {
		return fmt.Errorf("failed to find resumable charges: %w", err)
	}

	for _, charge := range resumable {
		if err := tasks.Push(ctx, queue.Task{ChargeID: charge.ID, Attempt: charge.Attempts + 1}); err != nil {
			return fmt.Errorf("failed to requeue charge %s: %w", charge.ID, err)
		}
	}

	a.log.InfoContext(ctx, "recovered charges",
		slog.Int64("reset", reset),
		slog.Int("requeued", len(resumable)),
	)

	return nil
}

func (a *App) start(ctx context.Context, c components) error {
	files := v1.NewFilesHandler(a.log, c.registry, c.files, a.cfg.HTTP.MaxUploadSize)
	charges := v1.NewChargesHandler(a.log, c.charges, c.storage, document.Key)
	server := v1.NewServer(a.log, a.cfg.HTTP, files, charges)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "task queue started", slog.Int("pending", c.queue.Pending()))
		return c.queue.Run(ctx)
	})

	if a.cfg.App.WatchDirectory != "" {
		if err := a.startWatcher(ctx, erg, c.registry); err != nil {
			return err
		}
	}

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

func (a *App) startWatcher(ctx context.Context, erg *errgroup.Group, registry *ingestion.Registry) error {
	layout := pipeline.NewLayout(a.cfg.App.WatchDirectory, a.cfg.App.ArchiveDirectory)
	if err := layout.Ensure(); err != nil {
		return err
	}

	files := make(chan string, filesBuffer)
	results := make(chan *domain.ImportResult, resultsBuffer)

	scanner := pipeline.NewScanner(a.log, layout, a.cfg.App.DirectoryScanInterval, files)
	importer := pipeline.NewImporter(a.log, files, results, registry)
	reporter := pipeline.NewReporter(a.log, layout, results)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "scanner started", slog.String("watch_dir", layout.Watch))
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "importer started")
		return importer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	return nil
}
