// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// Announcement is a record as returned by GET /announcement/get/<key>.
//
// Key is not part of the response body; it is filled in by the client from the
// key that was requested. CreatedAt and ExpiresAt are assigned by the service
// and are nil when the service omits them.
type Announcement struct {
	Key       string     `json:"-"`
	Content   string     `json:"content"`
	CreatedAt *Timestamp `json:"created_at,omitempty"`
	ExpiresAt *Timestamp `json:"expires_at,omitempty"`
	Public    *bool      `json:"public,omitempty"`
}

// HasExpiry reports whether the service returned an expiration for the record.
func (a Announcement) HasExpiry() bool {
	return a.ExpiresAt != nil && !a.ExpiresAt.IsEmpty()
}

// FetchInput is everything needed to read one announcement.
type FetchInput struct {
	Key         string
	Credentials Credentials
}

// SetInput is the operator's create-or-update request before expiry
// conversion. A zero ExpiresAt means the announcement never expires.
type SetInput struct {
	Key         string
	Content     string
	Public      bool
	ExpiresAt   time.Time
	Credentials Credentials
}

// DeleteInput is everything needed to delete one announcement.
type DeleteInput struct {
	Key         string
	Credentials Credentials
}
