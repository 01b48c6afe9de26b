package archive

import (
	"database/sql"

	"github.com/condwatch/condwatch/internal/errors"
)

// initSchema initializes the database schema for archived snapshots
func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS snapshots (
            entity_id TEXT NOT NULL,
            timestamp INTEGER NOT NULL,
            smoothed_amplitude REAL,
            degradation_slope REAL,
            estimated_rul REAL,
            smoothed_temperature REAL,
            thermal_status TEXT,
            PRIMARY KEY (entity_id, timestamp)
        )
    `)
	if err != nil {
		return errors.Wrap(ErrStorageInit, err)
	}

	return nil
}
