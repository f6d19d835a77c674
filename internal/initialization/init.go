// The init package contains functions that setup required dependencies such as the SQLite database.
package initialization

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/fedoraconnector/internal/config"
)

const (
	QueueWorkers         = 2
	QueueReleaseAfter    = time.Minute
	QueueCleanupInterval = time.Hour
)

// SetupDB creates the database, if it does not yet exist, and applies all remaining migrations.
func SetupDB(db *sql.DB, folder, dbname string) error {
	log.Info().Str("folder", folder).Msg("starting migrations")
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+folder,
		dbname,
		driver,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	err = mig.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("database schema is up to date")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to run migrations")
		return err
	}
	return nil
}

func OpenDB(connString string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", connString)
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	return db, nil
}

// InitQueue opens the queue database and installs backlite's schema. It returns nil, without error, if the queue
// is disabled in the configuration.
func InitQueue(cfg *config.Configuration) (*backlite.Client, error) {
	if cfg.QueueDbUrl == "" {
		log.Info().Msg("task queue disabled")
		return nil, nil
	}

	d, err := OpenDB(cfg.QueueDbUrl)
	if err != nil {
		return nil, err
	}

	client, err := backlite.NewClient(backlite.ClientConfig{
		DB:              d,
		Logger:          queueLogger{},
		ReleaseAfter:    QueueReleaseAfter,
		NumWorkers:      QueueWorkers,
		CleanupInterval: QueueCleanupInterval,
	})
	if err != nil {
		return nil, err
	}

	if err = client.Install(); err != nil {
		return nil, fmt.Errorf("failed to install queue schema: %w", err)
	}
	return client, nil
}

// queueLogger forwards backlite's messages to zerolog.
type queueLogger struct{}

func (queueLogger) Info(message string, params ...any) {
	log.Info().Fields(params).Msg(message)
}

func (queueLogger) Error(message string, params ...any) {
	log.Error().Fields(params).Msg(message)
}
