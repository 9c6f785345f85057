// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

const (
	// DoneMarker marks a completed task.
	DoneMarker = "[x]"

	// OpenMarker marks an open task.
	OpenMarker = "[ ]"
)

// FormatTask formats a task line.
// Format: "{N:>4}  {MARKER} {DESCRIPTION}\n" (4-wide right-aligned number, two spaces, marker, description)
func FormatTask(w io.Writer, num int, task service.Task) {
	marker := OpenMarker
	if task.Completed {
		marker = DoneMarker
	}
	fmt.Fprintf(w, "%4d  %s %s\n", num, marker, normalizeDescription(task.Description))
}

// normalizeDescription normalizes a task description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func normalizeDescription(description string) string {
	description = strings.ReplaceAll(description, "\r", " ")
	description = strings.ReplaceAll(description, "\n", " ")

	if strings.TrimSpace(description) == "" {
		return "(untitled)"
	}
	return description
}
