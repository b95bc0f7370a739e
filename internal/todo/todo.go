// Package todo holds the application state and its pure transition logic.
// Nothing in here touches the terminal; rendering and key handling live in
// internal/tui.
package todo

import (
	"maps"
	"sort"
)

// Todo is the domain model for a single entry.
type Todo struct {
	ID          int
	Description string
	Completed   bool
	Editing     bool
}

// Filter selects which todos are displayed.
type Filter int

const (
	All Filter = iota
	Active
	Completed
)

func (f Filter) String() string {
	switch f {
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	default:
		return "All"
	}
}

// Next cycles All -> Active -> Completed -> All.
func (f Filter) Next() Filter {
	switch f {
	case All:
		return Active
	case Active:
		return Completed
	default:
		return All
	}
}

// State is the whole application state. Todos are keyed by id; storage
// order is meaningless and display order is always ascending id (see
// Visible). Update returns fresh copies, so a State value held across a
// transition stays valid.
type State struct {
	Todos     map[int]Todo
	Filter    Filter
	LastID    int
	NewInput  string
	EditInput string
}

// NewState returns the startup state: no todos, All filter, empty inputs.
func NewState() State {
	return State{Todos: map[int]Todo{}}
}

// clone copies the state deeply enough that writes to the copy's todos
// cannot be observed through the original.
func (s State) clone() State {
	s.Todos = maps.Clone(s.Todos)
	return s
}

// Visible materializes the display list: filtered, then sorted ascending
// by id. Map iteration order is unspecified, so the sort is not optional.
func Visible(s State) []Todo {
	out := make([]Todo, 0, len(s.Todos))
	for _, t := range s.Todos {
		switch s.Filter {
		case Active:
			if t.Completed {
				continue
			}
		case Completed:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ActiveCount is the number of todos not yet completed.
func ActiveCount(s State) int {
	n := 0
	for _, t := range s.Todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

// CompletedCount is the number of completed todos.
func CompletedCount(s State) int {
	return len(s.Todos) - ActiveCount(s)
}

// ItemsLabel pluralizes the footer label.
func ItemsLabel(n int) string {
	if n == 1 {
		return "item"
	}
	return "items"
}

// ShowToggleAll reports whether the toggle-all control is shown. It is
// hidden only when there are no todos at all.
func ShowToggleAll(s State) bool {
	return len(s.Todos) > 0
}

// CanClearCompleted reports whether clear-completed is available. The rule
// is total count, not completed count: with only active todos present the
// control is enabled and clearing is simply a no-op.
func CanClearCompleted(s State) bool {
	return len(s.Todos) > 0
}
