package views

import (
	"pawlist/internal/catalog"
	"pawlist/ui/tui/components"
	"pawlist/ui/tui/state"
	"pawlist/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type DetailView struct{}

// Render draws the selected animal. Without one it draws nothing; the
// controller redirects to the list before that frame is ever shown.
func (v DetailView) Render(s state.AppState, props ViewProps) string {
	a := s.Selected
	if a == nil {
		return ""
	}

	header := styles.HeaderStyle.Width(props.Width).Render("Detail")

	contentWidth := props.Width - 4
	if contentWidth < 30 {
		contentWidth = 30
	}
	if contentWidth > 72 {
		contentWidth = 72
	}

	lines := []string{
		components.Photo(a.PhotoID, contentWidth-2),
		"",
		styles.NameStyle.Render(a.Name),
	}
	for _, f := range catalog.Attributes(*a) {
		lines = append(lines, "")
		if f.Muted {
			lines = append(lines, styles.SecondaryStyle.Render(f.Text()))
			continue
		}
		lines = append(lines, f.Text())
	}

	// Visual affordance only; no key or zone is bound to it.
	button := lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center,
		styles.ButtonStyle.Render(catalog.AskLabel(*a)))
	lines = append(lines, button)

	body := lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		styles.FooterStyle.Render(props.HelpView),
	)
}
