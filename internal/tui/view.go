package tui

import (
	"strings"

	"github.com/MKhiriev/signpost/internal/coordinator"
	"github.com/MKhiriev/signpost/internal/utils"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	switch m.overlay {
	case overlayBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	case overlayConfirmDelete:
		return appStyle.Render(confirmModel{key: m.deleteKey.Value()}.View())
	case overlayError:
		return appStyle.Render(errorOverlayModel{message: m.errMsg}.View())
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.coord.State() {
	case coordinator.View:
		b.WriteString(m.renderViewPanel())
	case coordinator.AddModify:
		b.WriteString(m.renderSetPanel())
	case coordinator.Delete:
		b.WriteString(m.renderDeletePanel())
	}

	return appStyle.Render(renderPage("SIGNPOST", b.String(), m.hotKeys()))
}

func (m appModel) renderHeader() string {
	var b strings.Builder

	policy := "resolving..."
	if p, ok := m.coord.Session().Policy(); ok {
		policy = p.String()
	}
	b.WriteString("Instance: " + policy + "\n")

	secretNote := ""
	if m.coord.Session().SecretCommitted {
		secretNote = helpStyle.Render(" (saved)")
	}
	b.WriteString(m.field("Secret:         ", focusSecret, m.secretInput) + secretNote + "\n")
	if m.private() {
		b.WriteString(m.field("Master password:", focusMasterPassword, m.masterInput) + "\n")
	}

	if m.status != "" {
		style := successStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status) + "\n")
	}

	return b.String()
}

func (m appModel) renderTabs() string {
	tabs := make([]string, 0, len(coordinator.States))
	for i, state := range coordinator.States {
		label := string(rune('1'+i)) + " " + state.String()
		if state == m.coord.State() {
			tabs = append(tabs, activeTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, tabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m appModel) renderViewPanel() string {
	var b strings.Builder
	b.WriteString(m.field("Key:", focusViewKey, m.viewKey) + "\n\n")

	if m.pending[coordinator.View] {
		b.WriteString(helpStyle.Render("Loading..."))
		return b.String()
	}

	panel := m.coord.ViewPanel()
	switch {
	case panel.Err != nil:
		b.WriteString(errorStyle.Render(humanizeError(panel.Err)))
	case panel.Record != nil:
		r := panel.Record
		b.WriteString(titleStyle.Render(r.Key) + "\n")
		b.WriteString(r.Content + "\n\n")
		b.WriteString("Created: " + utils.DescribeTimestamp(r.CreatedAt, "-") + "\n")
		b.WriteString("Expires: " + utils.DescribeTimestamp(r.ExpiresAt, "never") + "\n")
		b.WriteString("Public:  " + utils.DescribePublic(r.Public, "-"))
	}

	return b.String()
}

func (m appModel) renderSetPanel() string {
	var b strings.Builder
	form := m.coord.SetForm()

	b.WriteString(m.field("Key:    ", focusSetKey, m.setKey) + "\n")
	b.WriteString(m.field("Content:", focusSetContent, m.setContent) + "\n")
	b.WriteString(m.field("Expires:", focusSetExpiry, m.setExpiry) + "\n")
	b.WriteString(m.field("Secret: ", focusSetSecret, m.setSecret) + "\n")

	check := "[ ]"
	if form.Public {
		check = "[x]"
	}
	b.WriteString(m.label("Public: ", focusSetPublic) + " " + check + "\n\n")

	if m.pending[coordinator.AddModify] {
		b.WriteString(helpStyle.Render("Saving..."))
		return b.String()
	}

	panel := m.coord.AddModifyPanel()
	if panel.Message != "" {
		b.WriteString(resultStyle(panel.Success).Render(panel.Message))
	}

	return b.String()
}

func (m appModel) renderDeletePanel() string {
	var b strings.Builder
	b.WriteString(m.field("Key:", focusDeleteKey, m.deleteKey) + "\n")
	b.WriteString(helpStyle.Render("Authorized with the session secret.") + "\n\n")

	if m.pending[coordinator.Delete] {
		b.WriteString(helpStyle.Render("Deleting..."))
		return b.String()
	}

	panel := m.coord.DeletePanel()
	if panel.Message != "" {
		b.WriteString(resultStyle(panel.Confirmed).Render(panel.Message))
	}

	return b.String()
}

func (m appModel) hotKeys() string {
	if m.focus == focusNone {
		hk := "1/2/3 or ←/→: panel  tab: edit  enter: submit  v: about  q: quit"
		if m.coord.State() == coordinator.View {
			hk += "  c: copy"
		}
		return hk
	}

	hk := "tab/shift+tab: next field  enter: submit  esc: leave fields"
	switch m.focus {
	case focusSecret:
		hk = "enter: save secret  tab: next field  esc: leave fields"
	case focusSetPublic:
		hk += "  space: toggle"
	}
	return hk
}

func (m appModel) field(label string, f focusTarget, in textinput.Model) string {
	return m.label(label, f) + " [" + in.View() + "]"
}

func (m appModel) label(label string, f focusTarget) string {
	if m.focus == f {
		return focusedStyle.Render(label)
	}
	return label
}

func resultStyle(ok bool) lipgloss.Style {
	if ok {
		return successStyle
	}
	return errorStyle
}
