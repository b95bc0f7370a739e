package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todomvc/internal/todo"
	"github.com/idilsaglam/todomvc/internal/ui"
)

func (m Model) View() string {
	t := ui.Current()
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.listView())
	b.WriteString("\n")
	b.WriteString(m.footerView())

	if m.adding || m.editing {
		b.WriteString("\n")
		b.WriteString(m.inputBarView())
	}

	// controls without a target are dropped from the help line entirely
	m.keys.ToggleAll.SetEnabled(todo.ShowToggleAll(m.state))
	m.keys.ClearDone.SetEnabled(todo.CanClearCompleted(m.state))
	b.WriteString("\n")
	b.WriteString(t.Help.Render(m.help.View(m.keys)))

	return ui.Panel(b.String())
}

func (m Model) headerView() string {
	t := ui.Current()
	done := todo.CompletedCount(m.state)
	total := len(m.state.Todos)
	return fmt.Sprintf("%s   %s %d  %s %d   %s",
		t.Title.Render("todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), total-done,
		t.Muted.Render(ui.ProgressBar(done, total, 20)),
	)
}

func (m Model) listView() string {
	t := ui.Current()
	vis := todo.Visible(m.state)
	if len(vis) == 0 {
		return t.Muted.Render("  nothing to show")
	}

	lines := make([]string, 0, len(vis))
	for i, item := range vis {
		box := t.Muted.Render(t.BoxUnchecked)
		text := item.Description
		if item.Completed {
			box = t.Success.Render(t.BoxChecked)
			text = t.Done.Render(text)
		}
		if item.Editing {
			text = t.Accent.Render(text)
		}
		prefix := "  "
		if i == m.cursor {
			prefix = t.Selected.Render(t.Cursor)
		}
		lines = append(lines, prefix+box+" "+text)
	}
	return strings.Join(lines, "\n")
}

func (m Model) footerView() string {
	t := ui.Current()
	n := todo.ActiveCount(m.state)

	parts := []string{
		fmt.Sprintf("%d %s left", n, todo.ItemsLabel(n)),
		m.filterBarView(),
	}
	clear := "C clear completed"
	if !todo.CanClearCompleted(m.state) {
		clear = t.Muted.Render(clear)
	} else {
		clear = t.Accent.Render(clear)
	}
	parts = append(parts, clear)

	return t.Muted.Render(parts[0]) + "   " + parts[1] + "   " + parts[2]
}

func (m Model) filterBarView() string {
	t := ui.Current()
	names := []todo.Filter{todo.All, todo.Active, todo.Completed}
	out := make([]string, 0, len(names))
	for _, f := range names {
		label := f.String()
		if f == m.state.Filter {
			label = t.Selected.Render(" " + label + " ")
		} else {
			label = t.Muted.Render(label)
		}
		out = append(out, label)
	}
	return strings.Join(out, " ")
}

func (m Model) inputBarView() string {
	t := ui.Current()
	bar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)

	if m.editing {
		title := "Edit item" + t.Muted.Render("  (empty = delete, esc = cancel)")
		return bar.Render(title + "\n" + m.editInput.View())
	}
	title := "Add new item"
	if m.addErr != "" {
		title += " — " + t.Error.Render(m.addErr)
	}
	return bar.Render(title + "\n" + m.newInput.View())
}
