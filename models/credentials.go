// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InstancePolicy is the public/private classification of a deployment.
type InstancePolicy int

const (
	// PolicyPublic means the master password is not required.
	PolicyPublic InstancePolicy = iota
	// PolicyPrivate means every request must carry the master password.
	PolicyPrivate
)

func (p InstancePolicy) String() string {
	if p == PolicyPrivate {
		return "private"
	}
	return "public"
}

// RequiresMasterPassword reports whether requests must carry a master password.
func (p InstancePolicy) RequiresMasterPassword() bool {
	return p == PolicyPrivate
}

// Credentials is the per-session authorization material attached to every
// request. MasterPassword is sent only when non-empty.
type Credentials struct {
	Secret         string
	MasterPassword string
	Policy         InstancePolicy
}
