package views

import (
	"math"

	"pawlist/internal/catalog"
	"pawlist/ui/tui/components"
	"pawlist/ui/tui/state"
	"pawlist/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
)

const (
	// rowHeight is the rendered height of one row: 3 content lines + border.
	rowHeight = 5
	// chromeHeight covers the header, the subtitle and the help footer.
	chromeHeight = 3 + 2 + 2
)

// RowZoneID is the bubblezone id of the row for an animal.
func RowZoneID(id uuid.UUID) string {
	return "animal_" + id.String()
}

// VisibleRows returns how many whole rows fit in height. Zero height means
// the size is not known yet and every row is shown.
func VisibleRows(height, total int) int {
	if height <= 0 {
		return total
	}
	n := (height - chromeHeight) / rowHeight
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	return n
}

// ScrollOffset returns the first row to draw so that cursor stays visible.
func ScrollOffset(cursor, visible, total int) int {
	offset := cursor - visible + 1
	if offset > total-visible {
		offset = total - visible
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

type ListView struct{}

func (v ListView) Render(s state.AppState, props ViewProps) string {
	header := styles.HeaderStyle.Width(props.Width).Render("🐾  Home")

	subtitle := lipgloss.NewStyle().
		PaddingLeft(2).
		MarginBottom(1).
		Foreground(styles.Muted).
		Italic(true).
		Render("Pick a friend to see their details.")

	total := len(s.Animals)
	visible := VisibleRows(props.Height, total)
	offset := ScrollOffset(props.Cursor, visible, total)

	rowWidth := props.Width - 6
	if rowWidth < 30 {
		rowWidth = 30
	}

	var rows []string
	for i := offset; i < offset+visible; i++ {
		a := s.Animals[i]

		// Spring highlight follows the cursor
		dist := math.Abs(float64(i) - props.AnimCursor)
		strength := 0.0
		if dist < 1.0 {
			strength = 1.0 - dist
		}
		popOut := int(strength * 2)

		style := styles.RowStyle.
			MarginLeft(1 + popOut).
			Width(rowWidth)
		switch {
		case strength > 0.1 || i == props.Cursor:
			style = style.BorderForeground(styles.BrandColor)
		case i == props.Hover:
			style = style.BorderForeground(lipgloss.Color("#aaa"))
		}

		rows = append(rows, zone.Mark(RowZoneID(a.ID), style.Render(renderRow(a, i == props.Cursor))))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)

	footer := styles.FooterStyle.Render(props.HelpView)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, subtitle, body, footer))
}

func renderRow(a catalog.Animal, selected bool) string {
	name := styles.NameStyle.Render(a.Name)
	if selected {
		name = styles.NameStyle.Foreground(styles.BrandColor).Render(a.Name)
	}

	text := lipgloss.NewStyle().PaddingLeft(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			name,
			styles.SecondaryStyle.Render(a.Detail),
		),
	)

	return lipgloss.JoinHorizontal(lipgloss.Center,
		components.Thumbnail(a.PhotoID, a.Name),
		text,
	)
}
