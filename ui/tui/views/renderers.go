package views

import (
	"pawlist/ui/tui/state"
)

func RenderList(s state.AppState, width, height, cursor, hover int, animCursor float64, helpView string) string {
	v := ListView{}
	return v.Render(s, ViewProps{
		Width:      width,
		Height:     height,
		Cursor:     cursor,
		Hover:      hover,
		AnimCursor: animCursor,
		HelpView:   helpView,
	})
}

func RenderDetail(s state.AppState, width, height int, helpView string) string {
	v := DetailView{}
	return v.Render(s, ViewProps{
		Width:    width,
		Height:   height,
		HelpView: helpView,
	})
}
