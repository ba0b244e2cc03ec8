package state

import (
	"pawlist/internal/catalog"
	"pawlist/internal/nav"
)

// AppState is what the views read on each frame.
type AppState struct {
	Animals []catalog.Animal // rebuilt every frame
	Route   nav.Entry

	// Selected is the animal resolved from Route, nil when the key does not
	// resolve.
	Selected *catalog.Animal
}

// Build resolves the route against a freshly built catalog.
func Build(src catalog.Source, route nav.Entry) AppState {
	s := AppState{
		Animals: src.Animals(),
		Route:   route,
	}
	if route.Screen == nav.ScreenDetail {
		if a, ok := catalog.Find(s.Animals, route.AnimalID); ok {
			s.Selected = &a
		}
	}
	return s
}
