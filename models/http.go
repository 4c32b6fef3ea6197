// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SetRequest is the JSON body of POST /announcement/set.
//
// ExpiresAt is a relative duration in seconds, not an instant. The service
// treats -1 as "never expires".
type SetRequest struct {
	Key            string `json:"key"`
	Value          string `json:"value"`
	Secret         string `json:"secret"`
	ExpiresAt      int64  `json:"expires_at"`
	Public         bool   `json:"public"`
	MasterPassword string `json:"master_password"`
}

// DeleteRequest is the JSON body of DELETE /announcement/delete.
type DeleteRequest struct {
	Key            string `json:"key"`
	Secret         string `json:"secret"`
	MasterPassword string `json:"master_password"`
}

// PolicyResponse is the body of GET /public.
type PolicyResponse struct {
	Public *bool `json:"public"`
}

// MessageResponse is the body the service sends with most statuses.
type MessageResponse struct {
	Message string `json:"message"`
}
