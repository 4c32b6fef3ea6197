package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/signpost/models"
	"github.com/go-resty/resty/v2"
)

// maxPlainMessage caps how much of a non-JSON error body is kept as message.
const maxPlainMessage = 200

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &ServiceError{
		StatusCode: resp.StatusCode(),
		Message:    extractMessage(resp.Body()),
		Err:        statusSentinel(resp.StatusCode()),
	}
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrServiceUnavailable
	default:
		return ErrUnexpectedStatus
	}
}

// extractMessage prefers the {"message": "..."} body the service sends and
// falls back to a short plain-text body. HTML error pages are dropped.
func extractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var msg models.MessageResponse
	if err := json.Unmarshal(body, &msg); err == nil {
		return strings.TrimSpace(msg.Message)
	}

	if strings.HasPrefix(trimmed, "<") || len(trimmed) > maxPlainMessage {
		return ""
	}
	return trimmed
}
