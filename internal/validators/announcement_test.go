// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/signpost/internal/expiry"
	"github.com/MKhiriev/signpost/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestValidator() Validator {
	return NewAnnouncementValidator(func() time.Time { return now })
}

func publicCreds() models.Credentials {
	return models.Credentials{Secret: "s1", Policy: models.PolicyPublic}
}

func privateCreds() models.Credentials {
	return models.Credentials{Secret: "s1", MasterPassword: "mp", Policy: models.PolicyPrivate}
}

func assertValidationError(t *testing.T, err error, field string, reason error) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, reason)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, field, vErr.Field)
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.FetchInput{Key: "k", Credentials: publicCreds()}))
	assert.NoError(t, v.Validate(ctx, &models.FetchInput{Key: "k", Credentials: publicCreds()}))
	assert.NoError(t, v.Validate(ctx, models.SetInput{Key: "k", Credentials: publicCreds()}))
	assert.NoError(t, v.Validate(ctx, &models.SetInput{Key: "k", Credentials: publicCreds()}))
	assert.NoError(t, v.Validate(ctx, models.DeleteInput{Key: "k", Credentials: publicCreds()}))
	assert.NoError(t, v.Validate(ctx, &models.DeleteInput{Key: "k", Credentials: publicCreds()}))

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.FetchInput{Key: "k"}, "bogus"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Fetch
// ---------------------------------------------------------------------------

func TestValidateFetch(t *testing.T) {
	tests := []struct {
		name   string
		in     models.FetchInput
		field  string
		reason error
	}{
		{name: "public without secret is fine", in: models.FetchInput{Key: "k"}},
		{name: "empty key", in: models.FetchInput{Credentials: publicCreds()}, field: FieldKey, reason: ErrEmptyKey},
		{name: "blank key", in: models.FetchInput{Key: "  ", Credentials: publicCreds()}, field: FieldKey, reason: ErrEmptyKey},
		{name: "private without secret", in: models.FetchInput{Key: "k", Credentials: models.Credentials{MasterPassword: "mp", Policy: models.PolicyPrivate}}, field: FieldSecret, reason: ErrEmptySecret},
		{name: "private without master password", in: models.FetchInput{Key: "k", Credentials: models.Credentials{Secret: "s", Policy: models.PolicyPrivate}}, field: FieldMasterPassword, reason: ErrMasterPasswordRequired},
		{name: "private complete", in: models.FetchInput{Key: "k", Credentials: privateCreds()}},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.in)
			if tt.reason == nil {
				assert.NoError(t, err)
				return
			}
			assertValidationError(t, err, tt.field, tt.reason)
		})
	}
}

// ---------------------------------------------------------------------------
// Set
// ---------------------------------------------------------------------------

func TestValidateSet(t *testing.T) {
	tests := []struct {
		name   string
		in     models.SetInput
		field  string
		reason error
	}{
		{name: "empty content allowed", in: models.SetInput{Key: "k", Credentials: publicCreds()}},
		{name: "future expiry", in: models.SetInput{Key: "k", ExpiresAt: now.Add(time.Minute), Credentials: publicCreds()}},
		{name: "empty key", in: models.SetInput{Credentials: publicCreds()}, field: FieldKey, reason: ErrEmptyKey},
		{name: "empty secret on public instance", in: models.SetInput{Key: "k"}, field: FieldSecret, reason: ErrEmptySecret},
		{name: "private without master password", in: models.SetInput{Key: "k", Credentials: models.Credentials{Secret: "s", Policy: models.PolicyPrivate}}, field: FieldMasterPassword, reason: ErrMasterPasswordRequired},
		{name: "expiry now", in: models.SetInput{Key: "k", ExpiresAt: now, Credentials: publicCreds()}, field: FieldExpiry, reason: expiry.ErrNotInFuture},
		{name: "expiry past", in: models.SetInput{Key: "k", ExpiresAt: now.Add(-time.Hour), Credentials: privateCreds()}, field: FieldExpiry, reason: expiry.ErrNotInFuture},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.in)
			if tt.reason == nil {
				assert.NoError(t, err)
				return
			}
			assertValidationError(t, err, tt.field, tt.reason)
		})
	}
}

func TestValidateSet_FieldScoping(t *testing.T) {
	v := newTestValidator()
	in := models.SetInput{Key: "k", ExpiresAt: now.Add(-time.Hour)}

	assert.NoError(t, v.Validate(context.Background(), in, FieldKey))
	assertValidationError(t, v.Validate(context.Background(), in, FieldKey, FieldExpiry), FieldExpiry, expiry.ErrNotInFuture)
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestValidateDelete(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DeleteInput{Key: "k", Credentials: privateCreds()}))
	assertValidationError(t, v.Validate(ctx, models.DeleteInput{Credentials: publicCreds()}), FieldKey, ErrEmptyKey)
	assertValidationError(t, v.Validate(ctx, models.DeleteInput{Key: "k"}), FieldSecret, ErrEmptySecret)
	assertValidationError(t, v.Validate(ctx, models.DeleteInput{Key: "k", Credentials: models.Credentials{Secret: "s", Policy: models.PolicyPrivate}}), FieldMasterPassword, ErrMasterPasswordRequired)
}

func TestValidationError_Message(t *testing.T) {
	err := newValidationError(FieldKey, ErrEmptyKey)
	assert.Equal(t, "key: announcement key is required", err.Error())
}
