// Package session holds the per-run credential state shared by the
// announcement operations and the UI.
package session

import (
	"github.com/MKhiriev/signpost/models"
)

// Session is owned by one coordinator and mutated only on its event loop.
// It is never stored in a package variable.
type Session struct {
	// Secret is the operator's current secret, typed or loaded.
	Secret string
	// SecretCommitted is true once Secret was loaded from or saved to the
	// credential store. The UI masks a committed secret.
	SecretCommitted bool
	// MasterPassword is sent with every request when non-empty.
	MasterPassword string

	policy         models.InstancePolicy
	policyResolved bool
}

// New returns a session with an optional pre-filled master password.
func New(masterPassword string) *Session {
	return &Session{MasterPassword: masterPassword}
}

// SetPolicy records the instance policy. Only the first call has an effect;
// the policy is not re-fetched during a session.
func (s *Session) SetPolicy(p models.InstancePolicy) {
	if s.policyResolved {
		return
	}
	s.policy = p
	s.policyResolved = true
}

// Policy returns the resolved policy and whether it is known yet. Until then
// the session reports Public.
func (s *Session) Policy() (models.InstancePolicy, bool) {
	return s.policy, s.policyResolved
}

// CommitSecret stores secret as the committed session secret.
func (s *Session) CommitSecret(secret string) {
	s.Secret = secret
	s.SecretCommitted = true
}

// EditSecret replaces the secret with uncommitted operator input.
func (s *Session) EditSecret(secret string) {
	s.Secret = secret
	s.SecretCommitted = false
}

// Credentials snapshots the session for one request.
func (s *Session) Credentials() models.Credentials {
	return models.Credentials{
		Secret:         s.Secret,
		MasterPassword: s.MasterPassword,
		Policy:         s.policy,
	}
}

// WithSecret snapshots the session with secret in place of the session
// secret. An empty secret falls back to the session's.
func (s *Session) WithSecret(secret string) models.Credentials {
	creds := s.Credentials()
	if secret != "" {
		creds.Secret = secret
	}
	return creds
}
