package nav

// Stack is the ordered sequence of active navs; the top entry is the menu
// currently on screen. An empty stack is a valid terminal state.
type Stack struct {
	ids []NavID
}

// Push makes the given nav current.
func (s *Stack) Push(id NavID) {
	s.ids = append(s.ids, id)
}

// Pop removes the current nav. Popping an empty stack is a no-op.
func (s *Stack) Pop() {
	if len(s.ids) == 0 {
		return
	}
	s.ids = s.ids[:len(s.ids)-1]
}

// Top returns the current nav without mutating the stack.
func (s *Stack) Top() (NavID, bool) {
	if len(s.ids) == 0 {
		return 0, false
	}
	return s.ids[len(s.ids)-1], true
}

// Depth reports the number of entries on the stack.
func (s *Stack) Depth() int { return len(s.ids) }
