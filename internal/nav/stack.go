package nav

// Stack holds navigation history for back navigation.
type Stack struct {
	entries []Entry
}

// NewStack creates an empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Entry, 0, 2),
	}
}

// Push adds an entry on top.
func (s *Stack) Push(e Entry) {
	s.entries = append(s.entries, e)
}

// Pop removes and returns the top entry.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it. The pointer stays valid
// until the next Push or Pop.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Below returns the entry under the top one, or nil when there is none.
func (s *Stack) Below() *Entry {
	if len(s.entries) < 2 {
		return nil
	}
	return &s.entries[len(s.entries)-2]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}
