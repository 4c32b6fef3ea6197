package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/signpost/internal/crypto"
	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/internal/store"
	"github.com/MKhiriev/signpost/internal/validators"
)

// secretCredentialName is the fixed row the secret lives under.
const secretCredentialName = "secret"

type credentialService struct {
	repo   store.CredentialRepository
	sealer crypto.Sealer
	logger *logger.Logger
}

func NewCredentialService(repo store.CredentialRepository, sealer crypto.Sealer, logger *logger.Logger) CredentialService {
	return &credentialService{repo: repo, sealer: sealer, logger: logger}
}

func (c *credentialService) Load(ctx context.Context) (string, bool, error) {
	stored, err := c.repo.GetCredential(ctx, secretCredentialName)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return "", false, nil
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "credentialService.Load").Msg("credential store unavailable, continuing without a saved secret")
		return "", false, fmt.Errorf("load secret: %w", err)
	}

	secret, err := c.sealer.Open(stored)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "credentialService.Load").Msg("stored secret cannot be opened")
		return "", false, fmt.Errorf("open stored secret: %w", err)
	}
	if secret == "" {
		return "", false, nil
	}

	return secret, true, nil
}

func (c *credentialService) Save(ctx context.Context, secret string) error {
	if secret == "" {
		return &validators.ValidationError{Field: validators.FieldSecret, Reason: validators.ErrEmptySecret}
	}

	sealed, err := c.sealer.Seal(secret)
	if err != nil {
		return fmt.Errorf("seal secret: %w", err)
	}

	if err = c.repo.SaveCredential(ctx, secretCredentialName, sealed); err != nil {
		c.logger.Err(err).Str("func", "credentialService.Save").Msg("failed to persist secret")
		return fmt.Errorf("save secret: %w", err)
	}

	c.logger.Debug().Str("func", "credentialService.Save").Msg("secret saved")
	return nil
}
