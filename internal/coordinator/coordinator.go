// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package coordinator selects which of the three operation panels is active
// and keeps each panel's form and last result.
//
// A Coordinator is not safe for concurrent use. The TUI mutates it only from
// its Update loop and runs the network part of an action in a tea.Cmd via
// [Coordinator.Execute], which touches no coordinator state.
package coordinator

import (
	"fmt"
	"time"

	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/internal/service"
	"github.com/MKhiriev/signpost/internal/session"
	"github.com/MKhiriev/signpost/models"
)

// ViewState is the active panel.
type ViewState int

const (
	View ViewState = iota
	AddModify
	Delete
)

// States lists the panels in tab order.
var States = []ViewState{View, AddModify, Delete}

func (s ViewState) String() string {
	switch s {
	case View:
		return "View"
	case AddModify:
		return "Add/Modify"
	case Delete:
		return "Delete"
	default:
		return fmt.Sprintf("ViewState(%d)", int(s))
	}
}

// ViewForm is the input of the View panel.
type ViewForm struct {
	Key string
}

// SetForm is the input of the Add/Modify panel. Expiry is raw operator
// input, parsed at submission. Secret overrides the session secret when
// non-empty.
type SetForm struct {
	Key     string
	Content string
	Expiry  string
	Secret  string
	Public  bool
}

// DeleteForm is the input of the Delete panel. Deletes are authorized with
// the session secret.
type DeleteForm struct {
	Key string
}

// ViewPanel holds the last fetch result. At most one of Record and Err is
// set.
type ViewPanel struct {
	Record *models.Announcement
	Err    error
}

// AddModifyPanel holds the last set outcome. An empty Message means nothing
// was submitted since the panel was last opened.
type AddModifyPanel struct {
	Message string
	Success bool
	Kind    models.FailureKind
}

// DeletePanel holds the last delete outcome.
type DeletePanel struct {
	Message   string
	Confirmed bool
	Kind      models.FailureKind
}

// Coordinator owns the session, the per-panel forms and their transient
// results.
type Coordinator struct {
	announcements service.AnnouncementService
	session       *session.Session
	loc           *time.Location
	logger        *logger.Logger

	state ViewState

	viewForm   ViewForm
	setForm    SetForm
	deleteForm DeleteForm

	viewPanel      ViewPanel
	addModifyPanel AddModifyPanel
	deletePanel    DeletePanel
}

// Option configures a [Coordinator].
type Option func(*Coordinator)

// WithLocation sets the zone expiry input is read in. Defaults to
// [time.Local].
func WithLocation(loc *time.Location) Option {
	return func(c *Coordinator) { c.loc = loc }
}

// WithLogger attaches a logger. Defaults to [logger.Nop].
func WithLogger(l *logger.Logger) Option {
	return func(c *Coordinator) { c.logger = l }
}

// New returns a coordinator in the View state with a public-by-default set
// form.
func New(announcements service.AnnouncementService, sess *session.Session, opts ...Option) *Coordinator {
	if sess == nil {
		sess = session.New("")
	}

	c := &Coordinator{
		announcements: announcements,
		session:       sess,
		loc:           time.Local,
		logger:        logger.Nop(),
		state:         View,
		setForm:       SetForm{Public: true},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns the active panel.
func (c *Coordinator) State() ViewState {
	return c.state
}

// Switch activates target and clears its previous result. Forms of every
// panel are kept. Switching to the active panel is a no-op.
func (c *Coordinator) Switch(target ViewState) {
	if target == c.state {
		return
	}

	switch target {
	case View:
		c.viewPanel = ViewPanel{}
	case AddModify:
		c.addModifyPanel = AddModifyPanel{}
	case Delete:
		c.deletePanel = DeletePanel{}
	default:
		return
	}

	c.logger.Debug().Str("from", c.state.String()).Str("to", target.String()).Msg("panel switched")
	c.state = target
}

// Session returns the owned session.
func (c *Coordinator) Session() *session.Session {
	return c.session
}

func (c *Coordinator) ViewForm() *ViewForm {
	return &c.viewForm
}

func (c *Coordinator) SetForm() *SetForm {
	return &c.setForm
}

func (c *Coordinator) DeleteForm() *DeleteForm {
	return &c.deleteForm
}

func (c *Coordinator) ViewPanel() ViewPanel {
	return c.viewPanel
}

func (c *Coordinator) AddModifyPanel() AddModifyPanel {
	return c.addModifyPanel
}

func (c *Coordinator) DeletePanel() DeletePanel {
	return c.deletePanel
}
