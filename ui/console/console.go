package console

import (
	"fmt"
	"io"
	"strings"

	"pawlist/internal/catalog"
)

const (
	colorReset = "\033[0m"
	colorDim   = "\033[2m"
	colorCyan  = "\033[36m"
)

// Print renders the catalog as a compact list, one animal per line, in
// catalog order.
func Print(w io.Writer, animals []catalog.Animal) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", "ADOPTABLE ANIMALS", colorReset)

	for i, a := range animals {
		// Compact Name (max 12 chars)
		name := a.Name
		if len(name) > 12 {
			name = name[:9] + "..."
		}

		// Dots leader
		dots := strings.Repeat("·", 14-len(name))

		fmt.Fprintf(w, "  %d. %s%s%s%s %s%s%s\n",
			i+1, name, colorCyan, dots, colorReset, colorDim, a.Detail, colorReset)
	}

	fmt.Fprintf(w, "%s─ Summary%s: %d animals\n\n", colorCyan, colorReset, len(animals))
}

// PrintDetail renders the full attributes of one animal.
func PrintDetail(w io.Writer, a catalog.Animal) {
	fmt.Fprintf(w, "%s■ %s%s  %s(%s)%s\n", colorCyan, a.Name, colorReset, colorDim, a.ID, colorReset)

	for _, f := range catalog.Attributes(a) {
		if f.Muted {
			fmt.Fprintf(w, "  %s%s%s\n", colorDim, f.Text(), colorReset)
			continue
		}
		fmt.Fprintf(w, "  %s\n", f.Text())
	}
	fmt.Fprintf(w, "\n  [ %s ]\n\n", catalog.AskLabel(a))
}
