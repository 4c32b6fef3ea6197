package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/signpost/internal/app"
	"github.com/MKhiriev/signpost/internal/coordinator"
	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/internal/service"
	"github.com/MKhiriev/signpost/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusTarget int

const (
	focusNone focusTarget = iota
	focusSecret
	focusMasterPassword
	focusViewKey
	focusSetKey
	focusSetContent
	focusSetExpiry
	focusSetSecret
	focusSetPublic
	focusDeleteKey
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayBuildInfo
	overlayConfirmDelete
	overlayError
)

// appModel is the single bubbletea model of the client. Operations run as
// tea.Cmds; their results are applied to the coordinator only in Update.
type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	coord     *coordinator.Coordinator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	copyToClipboard func(string) error

	secretInput textinput.Model
	masterInput textinput.Model
	viewKey     textinput.Model
	setKey      textinput.Model
	setContent  textinput.Model
	setExpiry   textinput.Model
	setSecret   textinput.Model
	deleteKey   textinput.Model

	focus   focusTarget
	overlay overlayKind
	errMsg  string

	status    string
	statusErr bool

	policyKnown bool
	pending     map[coordinator.ViewState]bool
}

func newAppModel(
	ctx context.Context,
	services *service.ClientServices,
	coord *coordinator.Coordinator,
	buildInfo models.AppBuildInfo,
	copyToClipboard func(string) error,
	logger *logger.Logger,
) appModel {
	m := appModel{
		ctx:             ctx,
		services:        services,
		coord:           coord,
		buildInfo:       buildInfo,
		logger:          logger,
		copyToClipboard: copyToClipboard,
		pending:         make(map[coordinator.ViewState]bool),
	}

	m.secretInput = newInput("secret", 40)
	m.masterInput = newInput("master password", 40)
	m.masterInput.EchoMode = textinput.EchoPassword
	m.masterInput.SetValue(coord.Session().MasterPassword)

	m.viewKey = newInput("announcement key", 40)
	m.setKey = newInput("announcement key", 40)
	m.setContent = newInput("content", 60)
	m.setExpiry = newInput("YYYY-MM-DDTHH:MM, empty = never", 40)
	m.setSecret = newInput("defaults to the session secret", 40)
	m.setSecret.EchoMode = textinput.EchoPassword
	m.deleteKey = newInput("announcement key", 40)

	m.setFocus(focusViewKey)
	return m
}

func newInput(placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = width
	in.Prompt = ""
	return in
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdResolvePolicy(), m.cmdLoadSecret())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case policyResolvedMsg:
		m.coord.Session().SetPolicy(msg.policy)
		m.policyKnown = true
		return m, nil

	case secretLoadedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("saved secret unavailable")
		}
		// operator input typed during startup wins
		if msg.found && strings.TrimSpace(m.secretInput.Value()) == "" {
			m.coord.Session().CommitSecret(msg.secret)
			m.secretInput.SetValue(msg.secret)
			m.maskSecret(true)
		}
		return m, nil

	case secretSavedMsg:
		if msg.err != nil {
			m.setStatus(app.MsgSecretNotSaved+": "+humanizeError(msg.err), true)
			return m, nil
		}
		if m.secretInput.Value() == msg.secret {
			m.coord.Session().CommitSecret(msg.secret)
			m.maskSecret(true)
		}
		m.setStatus(app.MsgSecretSaved, false)
		return m, nil

	case actionDoneMsg:
		delete(m.pending, msg.result.State)
		m.coord.Apply(msg.result)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayBuildInfo, overlayError:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) || key.Matches(msg, keys.info) {
			m.overlay = overlayNone
			m.errMsg = ""
		}
		return m, nil
	case overlayConfirmDelete:
		switch {
		case key.Matches(msg, keys.yes):
			m.overlay = overlayNone
			return m.submit(coordinator.Delete)
		case key.Matches(msg, keys.no):
			m.overlay = overlayNone
		}
		return m, nil
	}

	if m.focus == focusNone {
		return m.handleNavigationKey(msg)
	}
	return m.handleInputKey(msg)
}

// handleNavigationKey handles keys while no input has focus.
func (m appModel) handleNavigationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.info):
		m.overlay = overlayBuildInfo
	case key.Matches(msg, keys.viewTab):
		m.switchTo(coordinator.View)
	case key.Matches(msg, keys.setTab):
		m.switchTo(coordinator.AddModify)
	case key.Matches(msg, keys.deleteTab):
		m.switchTo(coordinator.Delete)
	case key.Matches(msg, keys.left):
		m.switchTo(m.neighbourTab(-1))
	case key.Matches(msg, keys.right):
		m.switchTo(m.neighbourTab(1))
	case key.Matches(msg, keys.tab):
		m.setFocus(m.firstPanelFocus())
	case key.Matches(msg, keys.backtab):
		ring := m.focusRing()
		m.setFocus(ring[len(ring)-1])
	case key.Matches(msg, keys.enter):
		return m.submitActive()
	case key.Matches(msg, keys.copy):
		m.copyRecord()
	}
	return m, nil
}

func (m appModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.setFocus(focusNone)
		return m, nil
	case key.Matches(msg, keys.tab):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		switch m.focus {
		case focusSecret:
			return m, m.cmdSaveSecret(m.secretInput.Value())
		case focusMasterPassword:
			m.cycleFocus(1)
			return m, nil
		}
		return m.submitActive()
	case m.focus == focusSetPublic && key.Matches(msg, keys.toggle):
		form := m.coord.SetForm()
		form.Public = !form.Public
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m appModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	in := m.input(m.focus)
	if in == nil {
		return m, nil
	}

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	m.syncForms()
	return m, cmd
}

// syncForms copies widget values into the session and the coordinator's
// forms.
func (m *appModel) syncForms() {
	sess := m.coord.Session()
	if v := m.secretInput.Value(); v != sess.Secret {
		sess.EditSecret(v)
		m.maskSecret(false)
	}
	sess.MasterPassword = m.masterInput.Value()

	m.coord.ViewForm().Key = m.viewKey.Value()

	form := m.coord.SetForm()
	form.Key = m.setKey.Value()
	form.Content = m.setContent.Value()
	form.Expiry = m.setExpiry.Value()
	form.Secret = m.setSecret.Value()

	m.coord.DeleteForm().Key = m.deleteKey.Value()
}

func (m appModel) submitActive() (tea.Model, tea.Cmd) {
	if !m.policyKnown {
		m.setStatus(app.MsgPolicyPending, true)
		return m, nil
	}
	state := m.coord.State()
	if state == coordinator.Delete && strings.TrimSpace(m.deleteKey.Value()) != "" {
		m.overlay = overlayConfirmDelete
		return m, nil
	}
	return m.submit(state)
}

// submit requires a resolved policy: without it the credentials would go out
// as public and a private instance would miss its master password.
func (m appModel) submit(state coordinator.ViewState) (tea.Model, tea.Cmd) {
	if m.pending[state] || !m.policyKnown {
		return m, nil
	}

	m.syncForms()
	m.status = ""
	m.pending[state] = true
	return m, m.cmdExecute(m.coord.Prepare(state))
}

func (m *appModel) switchTo(state coordinator.ViewState) {
	inPanel := m.focus > focusMasterPassword
	m.coord.Switch(state)
	m.status = ""
	if inPanel {
		m.setFocus(m.firstPanelFocus())
	}
}

func (m *appModel) neighbourTab(step int) coordinator.ViewState {
	n := len(coordinator.States)
	return coordinator.States[(int(m.coord.State())+step+n)%n]
}

func (m *appModel) copyRecord() {
	if m.coord.State() != coordinator.View {
		return
	}
	record := m.coord.ViewPanel().Record
	if record == nil {
		m.setStatus("Nothing to copy", false)
		return
	}
	if err := m.copyToClipboard(record.Content); err != nil {
		m.overlay = overlayError
		m.errMsg = "Copy failed: " + err.Error()
		return
	}
	m.setStatus("Copied to clipboard", false)
}

func (m *appModel) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m *appModel) maskSecret(masked bool) {
	if masked {
		m.secretInput.EchoMode = textinput.EchoPassword
		return
	}
	m.secretInput.EchoMode = textinput.EchoNormal
}

func (m *appModel) private() bool {
	policy, ok := m.coord.Session().Policy()
	return ok && policy.RequiresMasterPassword()
}

// focusRing lists the focusable elements in tab order: the header first,
// then the active panel.
func (m *appModel) focusRing() []focusTarget {
	ring := []focusTarget{focusSecret}
	if m.private() {
		ring = append(ring, focusMasterPassword)
	}

	switch m.coord.State() {
	case coordinator.View:
		ring = append(ring, focusViewKey)
	case coordinator.AddModify:
		ring = append(ring, focusSetKey, focusSetContent, focusSetExpiry, focusSetSecret, focusSetPublic)
	case coordinator.Delete:
		ring = append(ring, focusDeleteKey)
	}

	return ring
}

func (m *appModel) firstPanelFocus() focusTarget {
	ring := m.focusRing()
	for _, f := range ring {
		if f > focusMasterPassword {
			return f
		}
	}
	return ring[0]
}

func (m *appModel) cycleFocus(step int) {
	ring := m.focusRing()
	idx := 0
	for i, f := range ring {
		if f == m.focus {
			idx = i
			break
		}
	}
	m.setFocus(ring[(idx+step+len(ring))%len(ring)])
}

func (m *appModel) setFocus(target focusTarget) {
	for _, f := range []focusTarget{
		focusSecret, focusMasterPassword, focusViewKey, focusSetKey,
		focusSetContent, focusSetExpiry, focusSetSecret, focusDeleteKey,
	} {
		m.input(f).Blur()
	}

	m.focus = target
	if in := m.input(target); in != nil {
		in.Focus()
	}
}

func (m *appModel) input(f focusTarget) *textinput.Model {
	switch f {
	case focusSecret:
		return &m.secretInput
	case focusMasterPassword:
		return &m.masterInput
	case focusViewKey:
		return &m.viewKey
	case focusSetKey:
		return &m.setKey
	case focusSetContent:
		return &m.setContent
	case focusSetExpiry:
		return &m.setExpiry
	case focusSetSecret:
		return &m.setSecret
	case focusDeleteKey:
		return &m.deleteKey
	default:
		return nil
	}
}
