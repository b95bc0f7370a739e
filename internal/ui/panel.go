package ui

import (
	"fmt"
	"os"
	"strings"
)

// Panel frames content with the themed border.
func Panel(inner string) string {
	return Current().Border.Render(inner)
}

// ProgressBar renders a Unicode progress bar with a done/total tail.
func ProgressBar(done, total, width int) string {
	span := total
	if span <= 0 {
		span = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(span) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// OK and Fail print one-line status messages for the CLI surface.
func OK(msg string) {
	fmt.Println(Current().Success.Render(SymCheck + " " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, Current().Error.Render(SymCross+" "+msg))
}

const (
	SymCheck = "✔"
	SymCross = "✖"
)
