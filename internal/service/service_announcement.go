package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/signpost/internal/adapter"
	"github.com/MKhiriev/signpost/internal/app"
	"github.com/MKhiriev/signpost/internal/config"
	"github.com/MKhiriev/signpost/internal/expiry"
	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/internal/validators"
	"github.com/MKhiriev/signpost/models"
)

type announcementService struct {
	adapter     adapter.ServiceAdapter
	validator   validators.Validator
	calculator  *expiry.Calculator
	granularity config.FailureGranularity
	logger      *logger.Logger
}

// NewAnnouncementService wires the operation surface. now is the clock used
// both for the future-expiry check and the relative TTL; nil means
// [time.Now].
func NewAnnouncementService(
	serviceAdapter adapter.ServiceAdapter,
	granularity config.FailureGranularity,
	now func() time.Time,
	logger *logger.Logger,
) AnnouncementService {
	if granularity == "" {
		granularity = config.GranularityDistinct
	}
	return &announcementService{
		adapter:     serviceAdapter,
		validator:   validators.NewAnnouncementValidator(now),
		calculator:  expiry.NewCalculator(now),
		granularity: granularity,
		logger:      logger,
	}
}

func (a *announcementService) Fetch(ctx context.Context, in models.FetchInput) (models.Announcement, error) {
	if err := a.validator.Validate(ctx, in); err != nil {
		return models.Announcement{}, err
	}

	announcement, err := a.adapter.GetAnnouncement(ctx, in.Key, in.Credentials)
	switch {
	case err == nil:
		return announcement, nil
	case errors.Is(err, adapter.ErrTransport):
		a.logger.Warn().Err(err).Str("key", in.Key).Msg("fetch: service unreachable")
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrServiceUnreachable, err)
	case errors.Is(err, adapter.ErrMalformedResponse):
		a.logger.Warn().Err(err).Str("key", in.Key).Msg("fetch: malformed response")
		return models.Announcement{}, fmt.Errorf("fetch announcement: %w", err)
	default:
		// absent and wrong-secret must stay indistinguishable
		a.logger.Debug().Err(err).Str("key", in.Key).Msg("fetch rejected")
		return models.Announcement{}, ErrNotFoundOrUnauthorized
	}
}

func (a *announcementService) Set(ctx context.Context, in models.SetInput) SetOutcome {
	if err := a.validator.Validate(ctx, in); err != nil {
		return a.failure(app.MsgSetFailed, err)
	}

	req := models.SetRequest{
		Key:            in.Key,
		Value:          in.Content,
		Secret:         in.Credentials.Secret,
		ExpiresAt:      a.calculator.ToRelativeSeconds(in.ExpiresAt),
		Public:         in.Public,
		MasterPassword: in.Credentials.MasterPassword,
	}
	// the clock may have moved past the directive since validation
	if req.ExpiresAt != expiry.NoExpiry && req.ExpiresAt <= 0 {
		return a.failure(app.MsgSetFailed, &validators.ValidationError{Field: validators.FieldExpiry, Reason: expiry.ErrNotInFuture})
	}

	if err := a.adapter.SetAnnouncement(ctx, req); err != nil {
		outcome := a.failure(app.MsgSetFailed, err)
		a.logger.Warn().Err(err).Str("key", in.Key).Str("kind", outcome.Kind.String()).Msg("set failed")
		return outcome
	}

	a.logger.Info().Str("key", in.Key).Int64("expires_in", req.ExpiresAt).Msg("announcement set")
	return models.Succeeded(app.MsgSetSucceeded)
}

func (a *announcementService) Delete(ctx context.Context, in models.DeleteInput) DeleteOutcome {
	if err := a.validator.Validate(ctx, in); err != nil {
		return a.failure(app.MsgDeleteFailed, err)
	}

	req := models.DeleteRequest{
		Key:            in.Key,
		Secret:         in.Credentials.Secret,
		MasterPassword: in.Credentials.MasterPassword,
	}

	if err := a.adapter.DeleteAnnouncement(ctx, req); err != nil {
		outcome := a.failure(app.MsgDeleteFailed, err)
		a.logger.Warn().Err(err).Str("key", in.Key).Str("kind", outcome.Kind.String()).Msg("delete failed")
		return outcome
	}

	a.logger.Info().Str("key", in.Key).Msg("announcement deleted")
	return models.Succeeded(app.MsgDeleteSucceeded)
}

// failure converts err into a failed outcome. generic is the operation's
// fixed failure string.
func (a *announcementService) failure(generic string, err error) models.Outcome {
	out := models.Outcome{Status: models.StatusFailed, Err: err}

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		out.Kind = models.KindValidation
		out.Message = fmt.Sprintf("%s: %v", generic, vErr.Reason)
		return out
	}

	if errors.Is(err, adapter.ErrTransport) {
		out.Kind = models.KindTransport
		out.Message = fmt.Sprintf("%s: %s", generic, app.MsgServiceUnreachable)
		return out
	}

	if a.granularity == config.GranularityConflated {
		out.Kind = models.KindService
		out.Message = generic
		return out
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		out.Kind = models.KindAuthorization
	case errors.Is(err, adapter.ErrNotFound):
		out.Kind = models.KindNotFound
	default:
		out.Kind = models.KindService
	}

	out.Message = generic
	var svcErr *adapter.ServiceError
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		out.Message = svcErr.Message
	}

	return out
}
