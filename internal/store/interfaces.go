// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client's local state in SQLite.
package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository is a name → value table of locally held credentials.
// The client keeps exactly one entry, the operator's secret.
type CredentialRepository interface {
	// GetCredential returns the stored value, or [ErrCredentialNotFound].
	GetCredential(ctx context.Context, name string) (string, error)
	// SaveCredential inserts or replaces the value stored under name.
	SaveCredential(ctx context.Context, name, value string) error
}
