// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's operations on top of the
// announcement service adapter and the local credential store.
package service

import (
	"context"

	"github.com/MKhiriev/signpost/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialService loads and persists the operator's secret.
type CredentialService interface {
	// Load returns the stored secret. found is false when nothing is stored
	// or the store failed; a store failure is logged and also returned so
	// the caller can mention it, but it must be treated as "absent".
	Load(ctx context.Context) (secret string, found bool, err error)

	// Save persists secret, replacing any previous one. An empty secret is
	// a validation error.
	Save(ctx context.Context, secret string) error
}

// PolicyResolver determines whether the instance is public or private.
type PolicyResolver interface {
	// Resolve returns the instance policy. The first call performs one
	// request; later calls return the cached policy. Any failure resolves to
	// [models.PolicyPublic].
	Resolve(ctx context.Context) models.InstancePolicy
}

// AnnouncementService is the operation surface: fetch, set and delete. Each
// operation is one round trip without retries.
type AnnouncementService interface {
	// Fetch returns the record for in.Key. Any non-success response is
	// [ErrNotFoundOrUnauthorized]; a missing key or credential is a
	// *validators.ValidationError and nothing is sent.
	Fetch(ctx context.Context, in models.FetchInput) (models.Announcement, error)

	// Set creates or replaces the record for in.Key.
	Set(ctx context.Context, in models.SetInput) SetOutcome

	// Delete removes the record for in.Key.
	Delete(ctx context.Context, in models.DeleteInput) DeleteOutcome
}
