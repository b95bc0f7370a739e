package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/idilsaglam/todomvc/internal/todo"
	"github.com/idilsaglam/todomvc/internal/tui"
	"github.com/idilsaglam/todomvc/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	Theme string // color theme name (classic|neon|mono)
}

// Run launches the interactive app and returns an exit code (0 ok, 1 error,
// 2 usage). Positional args become the initial todos, added through the
// ordinary state transition so ids are assigned the same way as at runtime.
func Run(args []string, opt Options) int {
	if len(args) == 1 {
		switch args[0] {
		case "help", "-h", "--help":
			PrintHelp()
			return 0
		}
	}

	ui.SetTheme(opt.Theme)

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		ui.Fail("interactive mode needs a terminal")
		return 1
	}

	if err := tui.Run(seedState(args)); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

// seedState feeds each arg through the normal add transition, so the id
// sequence matches what interactive adds would produce.
func seedState(titles []string) todo.State {
	state := todo.NewState()
	for _, title := range titles {
		state, _ = todo.Update(state, todo.SetNewInput{Text: title})
		state, _ = todo.Update(state, todo.AddTodo{})
	}
	return state
}

func PrintHelp() {
	fmt.Printf(`todomvc - an in-memory todo list for the terminal

Usage:
  todomvc [flags] [initial todos...]

Flags:
  -theme <name>   Color theme: classic, neon or mono
  -version        Print version and exit

Keys:
  a               Add a new item
  e / enter       Edit the selected item (empty text deletes it)
  space / x       Toggle the selected item
  A               Toggle every item
  d / backspace   Delete the selected item
  C               Clear completed items
  tab, 1/2/3      Switch filter (All / Active / Completed)
  q               Quit

Examples:
  todomvc
  todomvc "Buy milk" "Walk dog"
  todomvc -theme neon
`)
}
