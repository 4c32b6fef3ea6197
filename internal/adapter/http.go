package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/signpost/internal/config"
	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/internal/utils"
	"github.com/MKhiriev/signpost/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathGetAnnouncement    = "/announcement/get/{key}"
	pathSetAnnouncement    = "/announcement/set"
	pathDeleteAnnouncement = "/announcement/delete"
	pathPublic             = "/public"

	headerSecret         = "secret"
	headerMasterPassword = "master_password"
	headerRequestID      = "X-Request-ID"
)

type httpServiceAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServiceAdapter constructs the HTTP/JSON implementation of
// [ServiceAdapter]. adapterCfg.HTTPAddress may carry a path prefix such as
// "/api"; every endpoint is resolved below it.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServiceAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.SetLogger(restyLogger{logger})

	return &httpServiceAdapter{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

// restyLogger routes resty's internal messages into zerolog instead of
// stderr, which the TUI owns.
type restyLogger struct {
	l *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...any) { r.l.Error().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...any)  { r.l.Warn().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...any) { r.l.Debug().Msgf(format, v...) }

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// newRequest prepares a request carrying ctx and a request id. An id already
// stored in ctx is reused so callers can correlate their own logs.
func (h *httpServiceAdapter) newRequest(ctx context.Context) (*resty.Request, string) {
	id, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		id = h.ids.Generate()
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerRequestID, id), id
}

func (h *httpServiceAdapter) do(req *resty.Request, id, method, path string) (*resty.Response, error) {
	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().
			Str("method", method).
			Str("path", path).
			Str("request_id", id).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("request failed")
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", id).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request done")

	return resp, mapHTTPError(resp)
}

// GetAnnouncement implements [ServiceAdapter]. It issues
// GET /announcement/get/<key> with the key path-escaped. The returned record
// has Key set to the requested key.
func (h *httpServiceAdapter) GetAnnouncement(ctx context.Context, key string, creds models.Credentials) (models.Announcement, error) {
	req, id := h.newRequest(ctx)
	req.SetPathParam("key", key).
		SetHeader(headerSecret, creds.Secret)
	if creds.MasterPassword != "" {
		req.SetHeader(headerMasterPassword, creds.MasterPassword)
	}

	resp, err := h.do(req, id, http.MethodGet, pathGetAnnouncement)
	if err != nil {
		return models.Announcement{}, err
	}

	var announcement models.Announcement
	if err = json.Unmarshal(resp.Body(), &announcement); err != nil {
		return models.Announcement{}, fmt.Errorf("%w: decode announcement: %w", ErrMalformedResponse, err)
	}
	announcement.Key = key

	return announcement, nil
}

// SetAnnouncement implements [ServiceAdapter]. It POSTs req to
// /announcement/set.
func (h *httpServiceAdapter) SetAnnouncement(ctx context.Context, req models.SetRequest) error {
	r, id := h.newRequest(ctx)
	_, err := h.do(r.SetBody(req), id, http.MethodPost, pathSetAnnouncement)
	return err
}

// DeleteAnnouncement implements [ServiceAdapter]. It sends req as the JSON
// body of DELETE /announcement/delete.
func (h *httpServiceAdapter) DeleteAnnouncement(ctx context.Context, req models.DeleteRequest) error {
	r, id := h.newRequest(ctx)
	_, err := h.do(r.SetBody(req), id, http.MethodDelete, pathDeleteAnnouncement)
	return err
}

// GetInstancePolicy implements [ServiceAdapter]. It reads GET /public.
func (h *httpServiceAdapter) GetInstancePolicy(ctx context.Context) (models.InstancePolicy, error) {
	req, id := h.newRequest(ctx)
	resp, err := h.do(req, id, http.MethodGet, pathPublic)
	if err != nil {
		return models.PolicyPublic, err
	}

	var policy models.PolicyResponse
	if err = json.Unmarshal(resp.Body(), &policy); err != nil {
		return models.PolicyPublic, fmt.Errorf("%w: decode policy: %w", ErrMalformedResponse, err)
	}
	if policy.Public == nil {
		return models.PolicyPublic, fmt.Errorf("%w: policy body has no public flag", ErrMalformedResponse)
	}

	if *policy.Public {
		return models.PolicyPublic, nil
	}
	return models.PolicyPrivate, nil
}
