// Package nav tracks which screen is showing and which animal it shows.
//
// The selected animal travels as a parameter of the Detail entry on the
// navigation stack. Popping the entry discards the selection with it, so a
// later visit to the list starts clean and there is no shared slot to go
// stale.
package nav

import (
	"fmt"

	"github.com/google/uuid"
)

// Screen identifies a screen.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
)

// ScreenExit signals that the last screen was popped.
const ScreenExit Screen = -1

func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "list"
	case ScreenDetail:
		return "detail"
	case ScreenExit:
		return "exit"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Entry is one stack entry. AnimalID is only meaningful for ScreenDetail.
type Entry struct {
	Screen   Screen
	AnimalID uuid.UUID

	// Resume carries screen-specific position state, such as the list
	// cursor, for restoring the screen when navigating back to it.
	Resume int
}

// Controller owns the navigation stack. It is not safe for concurrent use;
// all calls happen on the UI goroutine.
type Controller struct {
	stack *Stack
}

// New returns a controller positioned on the list.
func New() *Controller {
	s := NewStack()
	s.Push(Entry{Screen: ScreenList})
	return &Controller{stack: s}
}

// Current returns the entry on top of the stack. After the list has been
// popped it reports ScreenExit.
func (c *Controller) Current() Entry {
	if c.stack.IsEmpty() {
		return Entry{Screen: ScreenExit}
	}
	return *c.stack.Peek()
}

// Select records a tap on the row for id and moves to the detail screen.
// resume is the list position to restore on the way back. A tap that lands
// while Detail is already on top replaces its key instead of stacking.
func (c *Controller) Select(id uuid.UUID, resume int) {
	top := c.stack.Peek()
	if top == nil {
		return
	}

	switch top.Screen {
	case ScreenList:
		top.Resume = resume
		c.stack.Push(Entry{Screen: ScreenDetail, AnimalID: id})
	case ScreenDetail:
		top.AnimalID = id
		if list := c.stack.Below(); list != nil {
			list.Resume = resume
		}
	}
}

// Back pops the current screen and returns the one now showing.
func (c *Controller) Back() Screen {
	c.stack.Pop()
	return c.Current().Screen
}

// Redirect unwinds to the list after a screen found its input missing.
// It returns the reason wrapped as an error for the caller to log.
func (c *Controller) Redirect(reason string) error {
	from := c.Current()
	for c.stack.Len() > 1 {
		c.stack.Pop()
	}
	return &PreconditionError{Screen: from.Screen, AnimalID: from.AnimalID, Reason: reason}
}

// Depth returns the number of entries on the stack.
func (c *Controller) Depth() int {
	return c.stack.Len()
}

// PreconditionError reports a screen entered without the input it needs.
type PreconditionError struct {
	Screen   Screen
	AnimalID uuid.UUID
	Reason   string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("nav: %s entered with animal %s: %s", e.Screen, e.AnimalID, e.Reason)
}
