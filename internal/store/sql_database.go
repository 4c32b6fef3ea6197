package store

import (
	"database/sql"

	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
