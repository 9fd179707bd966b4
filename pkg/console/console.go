// Package console formats user-facing CLI output. Styling is applied only
// when the destination is a terminal, so piped output stays plain.
package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/figtools/fig/pkg/styles"
	"github.com/figtools/fig/pkg/tty"
)

// isTTY checks if stdout is a terminal
func isTTY() bool {
	return tty.IsStdoutTerminal()
}

// applyStyle conditionally applies styling based on TTY status
func applyStyle(style lipgloss.Style, text string) string {
	if isTTY() {
		return style.Render(text)
	}
	return text
}

// FormatSuccessMessage formats a success message with styling
func FormatSuccessMessage(message string) string {
	return applyStyle(styles.Success, "✓ ") + message
}

// FormatInfoMessage formats an informational message
func FormatInfoMessage(message string) string {
	return applyStyle(styles.Info, "ℹ ") + message
}

// FormatErrorMessage formats a simple error message (for stderr output)
func FormatErrorMessage(message string) string {
	return applyStyle(styles.Error, "✗ ") + message
}

// FormatListHeader formats a section header for lists
func FormatListHeader(header string) string {
	return applyStyle(styles.ListHeader, header)
}

// FormatListItem formats an item in a list
func FormatListItem(item string) string {
	return applyStyle(styles.ListItem, "  "+item)
}

// FormatFilePath formats a file path for emphasis in messages
func FormatFilePath(path string) string {
	return applyStyle(styles.FilePath, path)
}
