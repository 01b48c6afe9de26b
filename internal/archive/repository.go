package archive

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"github.com/condwatch/condwatch/internal/errors"
	"github.com/condwatch/condwatch/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

type Repository interface {
	Store(ctx context.Context, snapshot *Snapshot) error
	Close() error
}

type sqliteRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func NewRepository(cfg Config) (Repository, error) {
	if cfg.DBPath == "" {
		return nil, errors.New(ErrInvalidDBPath)
	}

	logger.Debug().Msgf("Initializing snapshot archive at: %s", cfg.DBPath)

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errors.Wrap(ErrStorageInit, err)
	}

	dsn := cfg.DBPath + "?_journal=WAL&_auto_vacuum=2"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(ErrStorageInit, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errors.Wrap(ErrStorageInit, err)
	}

	return &sqliteRepository{
		db: db,
	}, nil
}

func (r *sqliteRepository) Store(ctx context.Context, snapshot *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO snapshots (
            entity_id, timestamp,
            smoothed_amplitude, degradation_slope, estimated_rul,
            smoothed_temperature, thermal_status
        ) VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(entity_id, timestamp) DO UPDATE SET
            smoothed_amplitude = excluded.smoothed_amplitude,
            degradation_slope = excluded.degradation_slope,
            estimated_rul = excluded.estimated_rul,
            smoothed_temperature = excluded.smoothed_temperature,
            thermal_status = excluded.thermal_status
    `,
		snapshot.EntityID,
		snapshot.Timestamp.Unix(),
		snapshot.SmoothedAmplitude,
		snapshot.DegradationSlope,
		snapshot.EstimatedRUL,
		snapshot.SmoothedTemperature,
		snapshot.ThermalStatus,
	)
	if err != nil {
		return errors.Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *sqliteRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Close(); err != nil {
		return errors.Wrap(ErrStorageClose, err)
	}
	return nil
}
