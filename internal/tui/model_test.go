package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todomvc/internal/todo"
)

func keyFor(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press feeds keys through Update. When a transition schedules the deferred
// focus message it is delivered too, the way the run loop would after
// rendering.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, cmd := m.Update(keyFor(k))
		m = next.(Model)
		if cmd != nil && m.editing && !m.editInput.Focused() {
			if _, ok := cmd().(focusEditMsg); ok {
				next, _ = m.Update(focusEditMsg{})
				m = next.(Model)
			}
		}
	}
	return m
}

// seeded builds a model holding the given descriptions, added through the
// normal transitions.
func seeded(descriptions ...string) Model {
	s := todo.NewState()
	for _, d := range descriptions {
		s, _ = todo.Update(s, todo.SetNewInput{Text: d})
		s, _ = todo.Update(s, todo.AddTodo{})
	}
	return New(s)
}

func TestAddFlow(t *testing.T) {
	m := press(t, New(todo.NewState()), "a", "Buy milk", "enter")

	s := m.State()
	if len(s.Todos) != 1 {
		t.Fatalf("have %d todos, want 1", len(s.Todos))
	}
	got := s.Todos[1]
	if got.Description != "Buy milk" || got.Completed || got.Editing {
		t.Errorf("todo = %+v, want pending 'Buy milk'", got)
	}
	if s.NewInput != "" {
		t.Errorf("NewInput = %q, want cleared", s.NewInput)
	}
	if m.adding {
		t.Error("add mode should have closed")
	}
}

func TestAddFlow_EmptyTitleRejected(t *testing.T) {
	m := press(t, New(todo.NewState()), "a", "enter")

	if len(m.State().Todos) != 0 {
		t.Error("empty title must not add a todo")
	}
	if m.addErr == "" {
		t.Error("expected a validation message")
	}
	if !m.adding {
		t.Error("add mode should stay open for a retry")
	}
}

func TestAddFlow_EscKeepsNothing(t *testing.T) {
	m := press(t, New(todo.NewState()), "a", "half", "esc")

	if len(m.State().Todos) != 0 {
		t.Error("esc must not add a todo")
	}
	if m.State().NewInput != "" {
		t.Errorf("NewInput = %q, want discarded", m.State().NewInput)
	}
	if m.adding {
		t.Error("add mode should have closed")
	}
}

func TestEditFlow_FocusArrivesAfterRender(t *testing.T) {
	m := seeded("walk")

	next, cmd := m.Update(keyFor("e"))
	m = next.(Model)

	if !m.State().Todos[1].Editing {
		t.Fatal("todo should be in editing mode")
	}
	if m.editInput.Focused() {
		t.Error("edit input must not be focused before the next render")
	}
	if cmd == nil {
		t.Fatal("expected a deferred focus command")
	}
	msg, ok := cmd().(focusEditMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want focusEditMsg", msg)
	}
	next, _ = m.Update(msg)
	m = next.(Model)
	if !m.editInput.Focused() {
		t.Error("edit input should be focused after the deferred message")
	}
}

func TestEditFlow_Rename(t *testing.T) {
	m := press(t, seeded("walk"), "e", " dog", "enter")

	got := m.State().Todos[1]
	if got.Description != "walk dog" {
		t.Errorf("Description = %q, want %q", got.Description, "walk dog")
	}
	if got.Editing {
		t.Error("todo should have left editing mode")
	}
	if m.editing {
		t.Error("edit mode should have closed")
	}
}

func TestEditFlow_EmptiedTextDeletes(t *testing.T) {
	m := press(t, seeded("x"), "e", "backspace", "enter")

	if len(m.State().Todos) != 0 {
		t.Errorf("emptied edit should delete, have %v", m.State().Todos)
	}
}

func TestEditFlow_EscCancels(t *testing.T) {
	m := press(t, seeded("walk"), "e", " dog", "esc")

	got := m.State().Todos[1]
	if got.Description != "walk" {
		t.Errorf("Description = %q, want untouched", got.Description)
	}
	if got.Editing {
		t.Error("todo should have left editing mode")
	}
	if m.State().EditInput != "" {
		t.Errorf("EditInput = %q, want cleared", m.State().EditInput)
	}
}

func TestToggleSelected(t *testing.T) {
	m := press(t, seeded("a", "b"), "down", "space")

	s := m.State()
	if s.Todos[1].Completed {
		t.Error("todo 1 should stay pending")
	}
	if !s.Todos[2].Completed {
		t.Error("todo 2 should be completed")
	}
}

func TestToggleAll(t *testing.T) {
	m := press(t, seeded("a", "b", "c"), "space", "A")

	for id, td := range m.State().Todos {
		if !td.Completed {
			t.Errorf("todo %d should be completed", id)
		}
	}

	// with everything done, toggle-all unchecks
	m = press(t, m, "A")
	for id, td := range m.State().Todos {
		if td.Completed {
			t.Errorf("todo %d should be pending again", id)
		}
	}
}

func TestToggleAll_NoTodosIsIgnored(t *testing.T) {
	m := press(t, New(todo.NewState()), "A")
	if len(m.State().Todos) != 0 {
		t.Error("toggle-all on an empty list must do nothing")
	}
}

func TestDeleteClampsCursor(t *testing.T) {
	m := press(t, seeded("a", "b"), "down", "d")

	s := m.State()
	if _, ok := s.Todos[2]; ok {
		t.Error("todo 2 should be deleted")
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamped to 0", m.cursor)
	}
}

func TestClearCompleted(t *testing.T) {
	m := press(t, seeded("a", "b", "c"), "space", "C")

	s := m.State()
	if len(s.Todos) != 2 {
		t.Fatalf("have %d todos, want 2", len(s.Todos))
	}
	if _, ok := s.Todos[1]; ok {
		t.Error("completed todo 1 should be cleared")
	}
}

func TestFilterKeys(t *testing.T) {
	m := press(t, seeded("a", "b"), "space", "2")
	if m.state.Filter != todo.Active {
		t.Fatalf("Filter = %v, want Active", m.state.Filter)
	}
	vis := todo.Visible(m.State())
	if len(vis) != 1 || vis[0].ID != 2 {
		t.Errorf("visible = %v, want only todo 2", vis)
	}

	m = press(t, m, "3")
	vis = todo.Visible(m.State())
	if len(vis) != 1 || vis[0].ID != 1 {
		t.Errorf("visible = %v, want only todo 1", vis)
	}

	m = press(t, m, "1")
	if got := len(todo.Visible(m.State())); got != 2 {
		t.Errorf("All shows %d todos, want 2", got)
	}
}

func TestFilterTabCycles(t *testing.T) {
	m := seeded("a")
	want := []todo.Filter{todo.Active, todo.Completed, todo.All}
	for _, f := range want {
		m = press(t, m, "tab")
		if m.state.Filter != f {
			t.Fatalf("Filter = %v, want %v", m.state.Filter, f)
		}
	}
}

func TestQuit(t *testing.T) {
	m := seeded("a")
	_, cmd := m.Update(keyFor("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce tea.QuitMsg")
	}
}

func TestView_Footer(t *testing.T) {
	m := seeded("a", "b")
	view := m.View()
	if !strings.Contains(view, "2 items left") {
		t.Errorf("view should show plural count, got:\n%s", view)
	}

	m = press(t, m, "space")
	view = m.View()
	if !strings.Contains(view, "1 item left") {
		t.Errorf("view should show singular count, got:\n%s", view)
	}
}

func TestView_EmptyList(t *testing.T) {
	view := New(todo.NewState()).View()
	if !strings.Contains(view, "nothing to show") {
		t.Errorf("empty state should render a placeholder, got:\n%s", view)
	}
	if !strings.Contains(view, "0 items left") {
		t.Errorf("empty state should pluralize zero, got:\n%s", view)
	}
}

func TestView_InputBarShownWhileAdding(t *testing.T) {
	m := press(t, New(todo.NewState()), "a")
	if !strings.Contains(m.View(), "Add new item") {
		t.Error("add bar should be visible in add mode")
	}
}
