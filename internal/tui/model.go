// Package tui is the interactive front end: it translates key presses into
// core messages, runs them through todo.Update and renders the resulting
// state. All todo semantics live in internal/todo; this package only owns
// terminal concerns (inputs, cursor, layout).
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todomvc/internal/todo"
)

// focusEditMsg is delivered by the command queue after the frame that
// started an edit has been rendered, so focus lands on a visible field.
type focusEditMsg struct{}

func focusEdit() tea.Msg { return focusEditMsg{} }

// Model wraps the application state for Bubble Tea.
type Model struct {
	state  todo.State
	cursor int // index into the visible list

	// Inline add
	adding bool
	addErr string // last add validation error

	// Inline edit
	editing bool
	editID  int

	newInput  textinput.Model
	editInput textinput.Model

	keys keyMap
	help help.Model

	width, height int
}

// New builds the initial model around the given starting state.
func New(initial todo.State) Model {
	ni := textinput.New()
	ni.Prompt = "> "
	ni.Placeholder = "What needs to be done?"
	ni.CharLimit = 200

	ei := textinput.New()
	ei.Prompt = "> "
	ei.Placeholder = "Edit item..."
	ei.CharLimit = 200

	return Model{
		state:     initial,
		newInput:  ni,
		editInput: ei,
		keys:      defaultKeyMap(),
		help:      help.New(),
		width:     80,
		height:    24,
	}
}

// State exposes the current application state (used by tests and by the
// runner after the program exits).
func (m Model) State() todo.State { return m.state }

func (m Model) Init() tea.Cmd { return nil }

// apply runs one core message and turns its effect into a command.
func (m *Model) apply(msg todo.Msg) tea.Cmd {
	next, eff := todo.Update(m.state, msg)
	m.state = next
	m.clampCursor()
	if eff == todo.EffectFocusEdit {
		return focusEdit
	}
	return nil
}

func (m *Model) clampCursor() {
	n := len(todo.Visible(m.state))
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the todo under the cursor, if any.
func (m Model) selected() (todo.Todo, bool) {
	vis := todo.Visible(m.state)
	if m.cursor < 0 || m.cursor >= len(vis) {
		return todo.Todo{}, false
	}
	return vis[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case focusEditMsg:
		cmd := m.editInput.Focus()
		return m, cmd
	}

	if m.adding {
		return m.updateAdding(msg)
	}
	if m.editing {
		return m.updateEditing(msg)
	}
	return m.updateBrowsing(msg)
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			if strings.TrimSpace(m.state.NewInput) == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			m.apply(todo.AddTodo{})
			m.newInput.SetValue("")
			m.newInput.Blur()
			m.adding = false
			m.addErr = ""
			return m, nil
		case "esc":
			m.apply(todo.SetNewInput{})
			m.newInput.SetValue("")
			m.newInput.Blur()
			m.adding = false
			m.addErr = ""
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.newInput, cmd = m.newInput.Update(msg)
	m.apply(todo.SetNewInput{Text: m.newInput.Value()})
	return m, cmd
}

func (m Model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			// an emptied field deletes the item; anything else renames it
			m.apply(todo.CommitEdit{ID: m.editID})
			m.editInput.SetValue("")
			m.editInput.Blur()
			m.editing = false
			return m, nil
		case "esc":
			m.apply(todo.CancelEdit{ID: m.editID})
			m.editInput.SetValue("")
			m.editInput.Blur()
			m.editing = false
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.apply(todo.SetEditInput{Text: m.editInput.Value()})
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// direct filter selection
	switch k.String() {
	case "1":
		m.apply(todo.SetFilter{Filter: todo.All})
		return m, nil
	case "2":
		m.apply(todo.SetFilter{Filter: todo.Active})
		return m, nil
	case "3":
		m.apply(todo.SetFilter{Filter: todo.Completed})
		return m, nil
	case "esc":
		return m, tea.Quit
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(k, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(k, m.keys.Down):
		if m.cursor < len(todo.Visible(m.state))-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(k, m.keys.Add):
		m.adding = true
		m.addErr = ""
		m.newInput.SetValue(m.state.NewInput)
		m.newInput.CursorEnd()
		m.newInput.Focus()
		return m, nil

	case key.Matches(k, m.keys.Edit):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		cmd := m.apply(todo.StartEdit{ID: t.ID, Text: t.Description})
		m.editing = true
		m.editID = t.ID
		m.editInput.SetValue(t.Description)
		m.editInput.CursorEnd()
		return m, cmd

	case key.Matches(k, m.keys.Toggle):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.apply(todo.Toggle{ID: t.ID, Completed: !t.Completed})
		return m, nil

	case key.Matches(k, m.keys.ToggleAll):
		if !todo.ShowToggleAll(m.state) {
			return m, nil
		}
		m.apply(todo.ToggleAll{Completed: todo.ActiveCount(m.state) > 0})
		return m, nil

	case key.Matches(k, m.keys.Delete):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.apply(todo.Delete{ID: t.ID})
		return m, nil

	case key.Matches(k, m.keys.ClearDone):
		if !todo.CanClearCompleted(m.state) {
			return m, nil
		}
		m.apply(todo.ClearCompleted{})
		return m, nil

	case key.Matches(k, m.keys.Filter):
		m.apply(todo.SetFilter{Filter: m.state.Filter.Next()})
		return m, nil
	}

	return m, nil
}
