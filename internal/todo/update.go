package todo

import "strings"

// Msg describes a user action consumed by Update. The set mirrors the
// events a todo UI produces: typing into one of the two inputs, starting,
// committing or cancelling an edit, toggling, deleting, filtering.
type Msg interface{ isMsg() }

// AddTodo appends a new todo built from State.NewInput and clears the
// input. A blank input adds nothing.
type AddTodo struct{}

// SetNewInput replaces the pending new-todo input text.
type SetNewInput struct{ Text string }

// SetEditInput replaces the pending edit input text.
type SetEditInput struct{ Text string }

// StartEdit puts the todo with ID into editing mode and seeds the edit
// input with Text. Any other todo already in editing mode leaves it.
type StartEdit struct {
	ID   int
	Text string
}

// CancelEdit leaves editing mode for the todo with ID, discarding the
// pending edit input.
type CancelEdit struct{ ID int }

// CommitEdit applies State.EditInput to the todo with ID. An empty input
// deletes the todo instead: clearing the text is how an edit says "remove".
type CommitEdit struct{ ID int }

// Toggle sets the completed flag of the todo with ID.
type Toggle struct {
	ID        int
	Completed bool
}

// ToggleAll sets the completed flag on every todo.
type ToggleAll struct{ Completed bool }

// Delete removes the todo with ID.
type Delete struct{ ID int }

// ClearCompleted removes every completed todo.
type ClearCompleted struct{}

// SetFilter switches the display filter.
type SetFilter struct{ Filter Filter }

// Noop changes nothing.
type Noop struct{}

func (AddTodo) isMsg()        {}
func (SetNewInput) isMsg()    {}
func (SetEditInput) isMsg()   {}
func (StartEdit) isMsg()      {}
func (CancelEdit) isMsg()     {}
func (CommitEdit) isMsg()     {}
func (Toggle) isMsg()         {}
func (ToggleAll) isMsg()      {}
func (Delete) isMsg()         {}
func (ClearCompleted) isMsg() {}
func (SetFilter) isMsg()      {}
func (Noop) isMsg()           {}

// Effect asks the run loop to perform a side effect after the state change
// has been rendered. The only one needed is moving focus to the edit field.
type Effect int

const (
	EffectNone Effect = iota
	EffectFocusEdit
)

// Update is the pure state transition: (state, message) -> (state, effect).
// It never mutates s. Messages naming an id that no longer exists are
// silent no-ops; every input is total, there are no error paths.
func Update(s State, msg Msg) (State, Effect) {
	switch m := msg.(type) {
	case AddTodo:
		title := strings.TrimSpace(s.NewInput)
		if title == "" {
			return s, EffectNone
		}
		next := s.clone()
		next.LastID++
		next.Todos[next.LastID] = Todo{ID: next.LastID, Description: title}
		next.NewInput = ""
		return next, EffectNone

	case SetNewInput:
		next := s
		next.NewInput = m.Text
		return next, EffectNone

	case SetEditInput:
		next := s
		next.EditInput = m.Text
		return next, EffectNone

	case StartEdit:
		t, ok := s.Todos[m.ID]
		if !ok {
			return s, EffectNone
		}
		next := s.clone()
		// only one todo may be editing at a time
		for id, other := range next.Todos {
			if other.Editing {
				other.Editing = false
				next.Todos[id] = other
			}
		}
		t.Editing = true
		next.Todos[m.ID] = t
		next.EditInput = m.Text
		return next, EffectFocusEdit

	case CancelEdit:
		t, ok := s.Todos[m.ID]
		if !ok {
			return s, EffectNone
		}
		next := s.clone()
		t.Editing = false
		next.Todos[m.ID] = t
		next.EditInput = ""
		return next, EffectNone

	case CommitEdit:
		t, ok := s.Todos[m.ID]
		if !ok {
			return s, EffectNone
		}
		next := s.clone()
		if next.EditInput == "" {
			delete(next.Todos, m.ID)
			return next, EffectNone
		}
		t.Description = next.EditInput
		t.Editing = false
		next.Todos[m.ID] = t
		next.EditInput = ""
		return next, EffectNone

	case Toggle:
		t, ok := s.Todos[m.ID]
		if !ok {
			return s, EffectNone
		}
		next := s.clone()
		t.Completed = m.Completed
		next.Todos[m.ID] = t
		return next, EffectNone

	case ToggleAll:
		next := s.clone()
		for id, t := range next.Todos {
			t.Completed = m.Completed
			next.Todos[id] = t
		}
		return next, EffectNone

	case Delete:
		if _, ok := s.Todos[m.ID]; !ok {
			return s, EffectNone
		}
		next := s.clone()
		delete(next.Todos, m.ID)
		return next, EffectNone

	case ClearCompleted:
		next := s.clone()
		for id, t := range next.Todos {
			if t.Completed {
				delete(next.Todos, id)
			}
		}
		return next, EffectNone

	case SetFilter:
		next := s
		next.Filter = m.Filter
		return next, EffectNone
	}

	// Noop and anything unrecognized
	return s, EffectNone
}
