package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/charge_notifier/internal/app"
	"github.com/kurochkinivan/charge_notifier/internal/config"
	"github.com/kurochkinivan/charge_notifier/internal/infrastructure/storage"
	"github.com/kurochkinivan/charge_notifier/internal/ingestion"
	"github.com/kurochkinivan/charge_notifier/internal/queue"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "charge_notifier",
		Usage:   "Charge ingestion and notification service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	// env переменные важнее yaml
	source := func(env, key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(
			cli.EnvVar(env),
			yaml.YAML(key, altsrc.NewStringPtrSourcer(&config)),
		)
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:      "watch-dir",
			Aliases:   []string{"w"},
			Usage:     "Set directory to watch for new files, empty disables the watcher",
			Sources:   source("WATCH_DIR", "app.watch_dir"),
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:    "archive-dir",
			Aliases: []string{"a"},
			Usage:   "Set directory for processed files, defaults to <watch-dir>/archive",
			Sources: source("ARCHIVE_DIR", "app.archive_dir"),
		},
		&cli.DurationFlag{
			Name:    "scan-interval",
			Aliases: []string{"s"},
			Value:   3 * time.Second,
			Usage:   "Set directory scan interval",
			Sources: source("SCAN_INTERVAL", "app.scan_interval"),
		},
		&cli.IntFlag{
			Name:      "batch-size",
			Value:     ingestion.DefaultBatchSize,
			Usage:     "Set number of rows per bulk insert",
			Sources:   source("BATCH_SIZE", "app.batch_size"),
			Validator: validatePositive[int],
		},
		&cli.IntFlag{
			Name:      "worker-concurrency",
			Value:     queue.DefaultConcurrency,
			Usage:     "Set number of lifecycle workers",
			Sources:   source("WORKER_CONCURRENCY", "worker.concurrency"),
			Validator: validatePositive[int],
		},
		&cli.IntFlag{
			Name:      "worker-max-attempts",
			Value:     queue.DefaultMaxAttempts,
			Usage:     "Set total attempts per charge, first one included",
			Sources:   source("WORKER_MAX_ATTEMPTS", "worker.max_attempts"),
			Validator: validatePositive[int],
		},
		&cli.DurationFlag{
			Name:    "worker-retry-delay",
			Value:   queue.DefaultRetryDelay,
			Usage:   "Set delay before a failed charge is retried",
			Sources: source("WORKER_RETRY_DELAY", "worker.retry_delay"),
		},
		&cli.StringFlag{
			Name:      "storage-driver",
			Value:     storage.DriverLocal,
			Usage:     "Set document storage driver: local/azure",
			Sources:   source("STORAGE_DRIVER", "storage.driver"),
			Validator: validateStorageDriver,
		},
		&cli.StringFlag{
			Name:    "storage-dir",
			Value:   "documents",
			Usage:   "Set directory for documents when the local driver is used",
			Sources: source("STORAGE_DIR", "storage.dir"),
		},
		&cli.StringFlag{
			Name:    "storage-azure-connection-string",
			Usage:   "Set Azure Blob Storage connection string",
			Sources: source("STORAGE_AZURE_CONNECTION_STRING", "storage.azure.connection_string"),
		},
		&cli.StringFlag{
			Name:    "storage-azure-container",
			Value:   "charges",
			Usage:   "Set Azure Blob Storage container",
			Sources: source("STORAGE_AZURE_CONTAINER", "storage.azure.container"),
		},
		&cli.StringFlag{
			Name:    "mailer-sender",
			Value:   "billing@localhost",
			Usage:   "Set sender address of charge notices",
			Sources: source("MAILER_SENDER", "mailer.sender"),
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  source("PG_HOST", "postgresql.host"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  source("PG_PORT", "postgresql.port"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  source("PG_USERNAME", "postgresql.username"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  source("PG_PASSWORD", "postgresql.password"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "charge_notifier",
			Sources:  source("PG_DBNAME", "postgresql.dbname"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: source("PG_SSLMODE", "postgresql.sslmode"),
		},
		&cli.Int32Flag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size",
			Value:   10,
			Sources: source("PG_MAX_CONNS", "postgresql.max_conns"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: source("HTTP_HOST", "http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: source("HTTP_PORT", "http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: source("HTTP_IDLE_TIMEOUT", "http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: source("HTTP_READ_TIMEOUT", "http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   5 * time.Minute,
			Sources: source("HTTP_WRITE_TIMEOUT", "http.write_timeout"),
		},
		&cli.Int64Flag{
			Name:      "http-max-upload-size",
			Usage:     "Set maximum upload size in bytes",
			Value:     256 << 20,
			Sources:   source("HTTP_MAX_UPLOAD_SIZE", "http.max_upload_size"),
			Validator: validatePositive[int64],
		},
		&cli.StringSliceFlag{
			Name:    "http-allowed-origins",
			Usage:   "Set CORS allowed origins, empty disables CORS",
			Sources: source("HTTP_ALLOWED_ORIGINS", "http.allowed_origins"),
		},
	}
}

func validateDirectory(dir string) error {
	if dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}

func validateStorageDriver(driver string) error {
	switch driver {
	case storage.DriverLocal, storage.DriverAzure:
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q, must be %q or %q", driver, storage.DriverLocal, storage.DriverAzure)
	}
}

func validatePositive[T int | int64](v T) error {
	if v <= 0 {
		return fmt.Errorf("must be positive, got %d", v)
	}
	return nil
}
