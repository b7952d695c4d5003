// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tdo/internal/service"
)

// FormatTask formats a numbered task line.
// Format: "{N:>4}  [x] {TITLE}\n", with the description appended in
// parentheses when present.
func FormatTask(w io.Writer, num int, task service.Task) {
	mark := " "
	if task.Completed {
		mark = "x"
	}
	line := fmt.Sprintf("%4d  [%s] %s", num, mark, normalizeTitle(task.Title))
	if desc := strings.TrimSpace(task.Description); desc != "" {
		line += "  (" + flatten(desc) + ")"
	}
	fmt.Fprintln(w, line)
}

// FormatProfile prints the profile fields, one per line. The id line is
// omitted when the backend did not provide one.
func FormatProfile(w io.Writer, p service.Profile) {
	fmt.Fprintf(w, "name:  %s\n", p.Name)
	fmt.Fprintf(w, "email: %s\n", p.Email)
	if p.ID != 0 {
		fmt.Fprintf(w, "id:    %d\n", p.ID)
	}
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = flatten(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// flatten replaces line breaks with spaces so a record stays on one line.
func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
