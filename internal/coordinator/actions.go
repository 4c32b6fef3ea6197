package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/signpost/internal/app"
	"github.com/MKhiriev/signpost/internal/expiry"
	"github.com/MKhiriev/signpost/internal/validators"
	"github.com/MKhiriev/signpost/models"
)

// Request is a submission snapshot taken from a panel's form and the session.
// It carries no reference to the coordinator's mutable state.
type Request struct {
	State ViewState

	fetch models.FetchInput
	set   models.SetInput
	del   models.DeleteInput

	// invalid is set when the form could not be turned into an input.
	invalid error
}

// Result is what [Coordinator.Execute] produced for one [Request].
type Result struct {
	State   ViewState
	Record  models.Announcement
	Err     error
	Outcome models.Outcome
}

// Prepare snapshots the form of state together with the current session
// credentials. Keys are opaque and sent exactly as typed.
func (c *Coordinator) Prepare(state ViewState) Request {
	req := Request{State: state}

	switch state {
	case View:
		req.fetch = models.FetchInput{
			Key:         c.viewForm.Key,
			Credentials: c.session.Credentials(),
		}
	case AddModify:
		expiresAt, err := expiry.ParseDirective(c.setForm.Expiry, c.loc)
		if err != nil {
			req.invalid = &validators.ValidationError{Field: validators.FieldExpiry, Reason: err}
			break
		}
		req.set = models.SetInput{
			Key:         c.setForm.Key,
			Content:     c.setForm.Content,
			Public:      c.setForm.Public,
			ExpiresAt:   expiresAt,
			Credentials: c.session.WithSecret(c.setForm.Secret),
		}
	case Delete:
		req.del = models.DeleteInput{
			Key:         c.deleteForm.Key,
			Credentials: c.session.Credentials(),
		}
	default:
		req.invalid = fmt.Errorf("unknown panel %v", state)
	}

	return req
}

// Execute performs the request's round trip. It is safe to call off the UI
// loop.
func (c *Coordinator) Execute(ctx context.Context, req Request) Result {
	res := Result{State: req.State}

	switch req.State {
	case View:
		res.Record, res.Err = c.announcements.Fetch(ctx, req.fetch)
		if res.Err == nil && res.Record.Key == "" {
			res.Record.Key = req.fetch.Key
		}
	case AddModify:
		if req.invalid != nil {
			res.Outcome = invalidOutcome(app.MsgSetFailed, req.invalid)
			break
		}
		res.Outcome = c.announcements.Set(ctx, req.set)
	case Delete:
		if req.invalid != nil {
			res.Outcome = invalidOutcome(app.MsgDeleteFailed, req.invalid)
			break
		}
		res.Outcome = c.announcements.Delete(ctx, req.del)
	default:
		res.Err = req.invalid
	}

	return res
}

// Apply stores res in its panel. Forms are never touched, so a failed
// submission can be retried as is.
func (c *Coordinator) Apply(res Result) {
	switch res.State {
	case View:
		if res.Err != nil {
			c.viewPanel = ViewPanel{Err: res.Err}
			return
		}
		record := res.Record
		c.viewPanel = ViewPanel{Record: &record}
	case AddModify:
		c.addModifyPanel = AddModifyPanel{
			Message: res.Outcome.Message,
			Success: res.Outcome.OK(),
			Kind:    res.Outcome.Kind,
		}
	case Delete:
		c.deletePanel = DeletePanel{
			Message:   res.Outcome.Message,
			Confirmed: res.Outcome.OK(),
			Kind:      res.Outcome.Kind,
		}
	}
}

// Submit runs the active panel's action synchronously.
func (c *Coordinator) Submit(ctx context.Context) Result {
	res := c.Execute(ctx, c.Prepare(c.state))
	c.Apply(res)
	return res
}

func (c *Coordinator) SubmitView(ctx context.Context) ViewPanel {
	c.Apply(c.Execute(ctx, c.Prepare(View)))
	return c.viewPanel
}

func (c *Coordinator) SubmitSet(ctx context.Context) AddModifyPanel {
	c.Apply(c.Execute(ctx, c.Prepare(AddModify)))
	return c.addModifyPanel
}

func (c *Coordinator) SubmitDelete(ctx context.Context) DeletePanel {
	c.Apply(c.Execute(ctx, c.Prepare(Delete)))
	return c.deletePanel
}

func invalidOutcome(generic string, err error) models.Outcome {
	msg := generic
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		msg = fmt.Sprintf("%s: %v", generic, vErr.Reason)
	}
	return models.Outcome{Status: models.StatusFailed, Kind: models.KindValidation, Message: msg, Err: err}
}
