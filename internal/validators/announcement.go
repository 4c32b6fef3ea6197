package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/signpost/internal/expiry"
	"github.com/MKhiriev/signpost/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldKey targets the announcement key.
	FieldKey = "key"

	// FieldSecret targets the secret. Always required for set and delete;
	// required for fetch on a private instance.
	FieldSecret = "secret"

	// FieldMasterPassword targets the master password, required whenever
	// the instance is private.
	FieldMasterPassword = "master_password"

	// FieldExpiry targets the expiry directive of a set, which must be
	// empty or strictly in the future.
	FieldExpiry = "expiry"
)

// AnnouncementValidator implements [Validator] for [models.FetchInput],
// [models.SetInput] and [models.DeleteInput], by value or pointer.
type AnnouncementValidator struct {
	now func() time.Time
}

// NewAnnouncementValidator returns a validator reading now for expiry
// checks. A nil clock means [time.Now].
func NewAnnouncementValidator(now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}
	return &AnnouncementValidator{now: now}
}

// Validate dispatches to the type-specific rules. With no fields every rule
// for the type runs.
func (v *AnnouncementValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FetchInput:
		return v.validateFetch(ctx, value, fields...)
	case *models.FetchInput:
		return v.validateFetch(ctx, *value, fields...)

	case models.SetInput:
		return v.validateSet(ctx, value, fields...)
	case *models.SetInput:
		return v.validateSet(ctx, *value, fields...)

	case models.DeleteInput:
		return v.validateDelete(ctx, value, fields...)
	case *models.DeleteInput:
		return v.validateDelete(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AnnouncementValidator) validateFetch(ctx context.Context, in models.FetchInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldSecret, FieldMasterPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if err := checkKey(in.Key); err != nil {
				return err
			}
		case FieldSecret:
			// reads of a public instance may go without a secret
			if in.Credentials.Policy.RequiresMasterPassword() && in.Credentials.Secret == "" {
				return newValidationError(FieldSecret, ErrEmptySecret)
			}
		case FieldMasterPassword:
			if err := checkMasterPassword(in.Credentials); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AnnouncementValidator) validateSet(ctx context.Context, in models.SetInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldSecret, FieldMasterPassword, FieldExpiry}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if err := checkKey(in.Key); err != nil {
				return err
			}
		case FieldSecret:
			if err := checkSecret(in.Credentials); err != nil {
				return err
			}
		case FieldMasterPassword:
			if err := checkMasterPassword(in.Credentials); err != nil {
				return err
			}
		case FieldExpiry:
			if err := expiry.ValidateFuture(in.ExpiresAt, v.now()); err != nil {
				return newValidationError(FieldExpiry, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AnnouncementValidator) validateDelete(ctx context.Context, in models.DeleteInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldSecret, FieldMasterPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if err := checkKey(in.Key); err != nil {
				return err
			}
		case FieldSecret:
			if err := checkSecret(in.Credentials); err != nil {
				return err
			}
		case FieldMasterPassword:
			if err := checkMasterPassword(in.Credentials); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// checkKey rejects empty and whitespace-only keys.
func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return newValidationError(FieldKey, ErrEmptyKey)
	}
	return nil
}

func checkSecret(creds models.Credentials) error {
	if creds.Secret == "" {
		return newValidationError(FieldSecret, ErrEmptySecret)
	}
	return nil
}

func checkMasterPassword(creds models.Credentials) error {
	if creds.Policy.RequiresMasterPassword() && creds.MasterPassword == "" {
		return newValidationError(FieldMasterPassword, ErrMasterPasswordRequired)
	}
	return nil
}
