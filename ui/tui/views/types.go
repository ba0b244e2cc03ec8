package views

import (
	"pawlist/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component States
	Cursor     int
	Hover      int // row under the mouse, -1 for none
	AnimCursor float64
	HelpView   string
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
