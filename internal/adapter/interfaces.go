// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the Signpost
// announcement service.
//
// The primary abstraction is [ServiceAdapter], which decouples the service
// layer from HTTP. The package ships a resty-backed implementation
// ([NewHTTPServiceAdapter]).
//
// Non-2xx responses are returned as *[ServiceError] wrapping a status
// sentinel (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404), so callers
// can use [errors.Is] for the class and [errors.As] for the service message.
// Failures where no response arrived wrap [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/signpost/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_adapter_mock.go -package=mock

// ServiceAdapter defines communication with the announcement service. Every
// method is exactly one round trip; nothing is retried.
type ServiceAdapter interface {
	// GetAnnouncement reads the record stored under key. The secret and,
	// when non-empty, the master password travel as request headers.
	GetAnnouncement(ctx context.Context, key string, creds models.Credentials) (models.Announcement, error)

	// SetAnnouncement creates or replaces a record. req.ExpiresAt is already
	// in relative seconds.
	SetAnnouncement(ctx context.Context, req models.SetRequest) error

	// DeleteAnnouncement removes a record.
	DeleteAnnouncement(ctx context.Context, req models.DeleteRequest) error

	// GetInstancePolicy reads the deployment's public/private flag. A body
	// without the flag is reported as [ErrMalformedResponse].
	GetInstancePolicy(ctx context.Context) (models.InstancePolicy, error)
}
