package router

// Resume is the position of a list, restored when navigating back to it.
type Resume struct {
	Selection int
	ScrollY   float32
}

// StackEntry represents a single entry in the navigation stack: a list the
// user navigated away from and where they were in it.
type StackEntry struct {
	List   List
	Resume Resume
}

// Stack manages navigation history for back navigation.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push adds a new entry to the stack.
// Called when navigating forward to a new list.
func (s *Stack) Push(list List, resume Resume) {
	s.entries = append(s.entries, StackEntry{
		List:   list,
		Resume: resume,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// Lists returns the lists on the stack from bottom to top.
func (s *Stack) Lists() []List {
	out := make([]List, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.List
	}
	return out
}
