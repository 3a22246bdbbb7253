package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Worker
	Storage
	Mailer
	PostgreSQL
	HTTP
}

type App struct {
	WatchDirectory        string
	ArchiveDirectory      string
	DirectoryScanInterval time.Duration
	BatchSize             int
}

type Worker struct {
	Concurrency int
	MaxAttempts int
	RetryDelay  time.Duration
}

type Storage struct {
	Driver                string
	Directory             string
	AzureConnectionString string
	AzureContainer        string
}

type Mailer struct {
	Sender string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type HTTP struct {
	Host           string
	Port           string
	IdleTimeout    time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxUploadSize  int64
	AllowedOrigins []string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			WatchDirectory:        cmd.String("watch-dir"),
			ArchiveDirectory:      cmd.String("archive-dir"),
			DirectoryScanInterval: cmd.Duration("scan-interval"),
			BatchSize:             cmd.Int("batch-size"),
		},
		Worker: Worker{
			Concurrency: cmd.Int("worker-concurrency"),
			MaxAttempts: cmd.Int("worker-max-attempts"),
			RetryDelay:  cmd.Duration("worker-retry-delay"),
		},
		Storage: Storage{
			Driver:                cmd.String("storage-driver"),
			Directory:             cmd.String("storage-dir"),
			AzureConnectionString: cmd.String("storage-azure-connection-string"),
			AzureContainer:        cmd.String("storage-azure-container"),
		},
		Mailer: Mailer{
			Sender: cmd.String("mailer-sender"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
			MaxConns: cmd.Int32("pg-max-conns"),
		},
		HTTP: HTTP{
			Host:           cmd.String("http-host"),
			Port:           cmd.String("http-port"),
			IdleTimeout:    cmd.Duration("http-idle-timeout"),
			ReadTimeout:    cmd.Duration("http-read-timeout"),
			WriteTimeout:   cmd.Duration("http-write-timeout"),
			MaxUploadSize:  cmd.Int64("http-max-upload-size"),
			AllowedOrigins: cmd.StringSlice("http-allowed-origins"),
		},
	}
}
