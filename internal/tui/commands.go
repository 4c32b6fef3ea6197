package tui

import (
	"github.com/MKhiriev/signpost/internal/coordinator"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) cmdResolvePolicy() tea.Cmd {
	ctx := m.ctx
	resolver := m.services.PolicyResolver

	return func() tea.Msg {
		return policyResolvedMsg{policy: resolver.Resolve(ctx)}
	}
}

func (m appModel) cmdLoadSecret() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CredentialService

	return func() tea.Msg {
		secret, found, err := svc.Load(ctx)
		return secretLoadedMsg{secret: secret, found: found, err: err}
	}
}

func (m appModel) cmdSaveSecret(secret string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CredentialService

	return func() tea.Msg {
		return secretSavedMsg{secret: secret, err: svc.Save(ctx, secret)}
	}
}

// cmdExecute runs a prepared request off the event loop. Execute does not
// touch coordinator state, the result is applied in Update.
func (m appModel) cmdExecute(req coordinator.Request) tea.Cmd {
	ctx := m.ctx
	coord := m.coord

	return func() tea.Msg {
		return actionDoneMsg{result: coord.Execute(ctx, req)}
	}
}
