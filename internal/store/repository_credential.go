package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/signpost/internal/logger"
)

type credentialRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (c *credentialRepository) GetCredential(ctx context.Context, name string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCredentialQuery(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = c.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrCredentialNotFound
	case err != nil:
		log.Err(err).
			Str("func", "credentialRepository.GetCredential").
			Str("name", name).
			Msg("failed to read credential")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (c *credentialRepository) SaveCredential(ctx context.Context, name, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveCredentialQuery(name, value, c.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.SaveCredential").
			Str("name", name).
			Msg("failed to execute upsert for credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
