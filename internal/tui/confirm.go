package tui

type confirmModel struct {
	key string
}

func (m confirmModel) View() string {
	content := "Delete announcement \"" + fitText(m.key, 40) + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
