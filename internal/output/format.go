// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"taskzord/internal/service"
)

const (
	// EmptyMessage is printed by list when there are no tasks.
	EmptyMessage = "no tasks found"

	ellipsis = "…"
)

// FormatTask formats a task line for the list command.
// Format: "{ID:>4}  [x] {TITLE}: {DESCRIPTION}\n"; "[ ]" when unconfirmed.
// A positive width truncates the line to that many display cells.
func FormatTask(w io.Writer, task service.TaskView, width int) {
	line := fmt.Sprintf("%4d  %s %s: %s", task.ID, checkbox(task.Confirmed),
		singleLine(task.Title), singleLine(task.Description))
	if width > 0 {
		line = runewidth.Truncate(line, width, ellipsis)
	}
	fmt.Fprintln(w, line)
}

// FormatCreated formats the confirmation line printed after add.
func FormatCreated(w io.Writer, task service.TaskView) {
	fmt.Fprintf(w, "created %d\n", task.ID)
}

func checkbox(confirmed bool) string {
	if confirmed {
		return "[x]"
	}
	return "[ ]"
}

// singleLine replaces line breaks with spaces. Other whitespace is kept.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
