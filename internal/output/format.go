// Package output provides the rendering policy and formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

// Treatment is the visual treatment a task renders with.
type Treatment int

const (
	Incomplete Treatment = iota
	Complete
)

// TreatmentOf derives a task's treatment from its done flag alone.
func TreatmentOf(task service.Task) Treatment {
	if task.Done {
		return Complete
	}
	return Incomplete
}

// Checkbox returns the plain-text marker for t.
func (t Treatment) Checkbox() string {
	if t == Complete {
		return "[x]"
	}
	return "[ ]"
}

// FormatTask formats a task line.
// Format: "{N:>4}  [x] {TEXT}\n" (4-wide right-aligned number, two spaces,
// checkbox, text)
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, TreatmentOf(task).Checkbox(), NormalizeText(task.Text))
}

// FormatTasks formats the whole list, numbered from 1. An empty list prints
// "no tasks" unless quiet.
func FormatTasks(w io.Writer, tasks []service.Task, quiet bool) {
	if len(tasks) == 0 {
		if !quiet {
			fmt.Fprintln(w, "no tasks")
		}
		return
	}
	for i, task := range tasks {
		FormatTask(w, i+1, task)
	}
}

// NormalizeText normalizes task text for single-line display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
