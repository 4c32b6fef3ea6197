// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/signpost/internal/app"
	"github.com/MKhiriev/signpost/internal/service"
	"github.com/MKhiriev/signpost/internal/validators"
)

const msgNoNetwork = "No network or the service is unreachable"

// humanizeError turns an operation error into the line shown in a panel.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var vErr *validators.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFoundOrUnauthorized):
		return app.MsgNotFoundOrUnauthorized
	case errors.Is(err, service.ErrServiceUnreachable):
		return msgNoNetwork
	case errors.As(err, &vErr):
		return vErr.Reason.Error()
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgNoNetwork
	}

	return err.Error()
}
