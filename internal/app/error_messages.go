// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// signpost services and user interfaces.
//
// All Msg* constants are human-readable strings shown to the operator to
// describe the outcome of an operation. Keeping them in one place ensures
// consistent wording between the TUI and the CLI.
package app

const (
	// MsgSetSucceeded is shown after the service accepted a set.
	MsgSetSucceeded = "Announcement set/modified successfully!"

	// MsgSetFailed is the fallback for a rejected set when the service
	// gave no explanation, and the only message in conflated mode.
	MsgSetFailed = "Failed to add announcement"

	// MsgDeleteSucceeded confirms a delete.
	MsgDeleteSucceeded = "Announcement deleted successfully!"

	// MsgDeleteFailed is the fallback for a rejected delete.
	MsgDeleteFailed = "Failed to delete announcement"

	// MsgNotFoundOrUnauthorized is shown for every failed fetch. It never
	// tells an absent key apart from a wrong secret.
	MsgNotFoundOrUnauthorized = "Announcement not found or incorrect key"

	// MsgServiceUnreachable is appended to the failure message when no
	// response was received at all.
	MsgServiceUnreachable = "service unreachable"

	// MsgSecretSaved confirms that the secret was persisted.
	MsgSecretSaved = "Secret saved!"

	// MsgSecretNotSaved is shown when the credential store rejected a save.
	MsgSecretNotSaved = "Failed to save secret"

	// MsgPolicyPending is shown when a submission arrives before the
	// instance policy is known.
	MsgPolicyPending = "Still checking whether the instance is private, try again in a moment"
)
