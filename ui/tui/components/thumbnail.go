package components

import (
	"strings"

	"pawlist/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Images are opaque asset references; the terminal shows a placeholder
// keyed by the reference instead of pixels.

// palette picks a stable fill color per photo reference.
var palette = []lipgloss.Color{"#c97b63", "#8fb996", "#7fa7c9", "#d4a373", "#b08bbb"}

func colorFor(photoID string) lipgloss.Color {
	sum := 0
	for _, r := range photoID {
		sum += int(r)
	}
	return palette[sum%len(palette)]
}

// Thumbnail renders the small round badge shown at the left of a list row.
func Thumbnail(photoID, name string) string {
	initial := "?"
	if name != "" {
		initial = strings.ToUpper(string([]rune(name)[0]))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorFor(photoID)).
		Foreground(colorFor(photoID)).
		Bold(true).
		Padding(0, 1).
		Render(initial)
}

// Photo renders the wide image area of the detail screen: a fixed-aspect
// block filled edge to edge, with the asset reference in the corner.
func Photo(photoID string, width int) string {
	if width < 12 {
		width = 12
	}
	height := width / 5
	if height < 3 {
		height = 3
	}

	fill := strings.Repeat("░", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = fill
	}
	// Caption replaces the start of the last row so the block keeps its size
	caption := " " + photoID + " "
	last := []rune(lines[height-1])
	copy(last, []rune(caption))
	lines[height-1] = string(last)

	return lipgloss.NewStyle().
		Foreground(colorFor(photoID)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Subtle).
		Render(strings.Join(lines, "\n"))
}
