package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Help returns the full usage text for the running binary.
func Help() string {
	return helpText(filepath.Base(os.Args[0]))
}

// helpText assembles the multi-section usage text from static metadata
// tables. Output is deterministic for a given program name.
func helpText(prog string) string {
	usage := fmt.Sprintf("Usage:\n\t%s <preview|generate|list> <args...>", prog)

	commands := [][2]string{
		{"preview <font> <text>", "Preview figlet text with specified font and text"},
		{"generate <font> <text> <file>", "Generate and save figlet text as PNG image"},
		{"list", "List available fonts"},
	}
	examples := [][2]string{
		{prog, "# Run help (also accepts -h, --help)"},
		{prog + " preview slant", "# Preview slant font with default text"},
		{prog + " preview slant 'Hello'", "# Preview slant font with custom text"},
		{prog + " generate slant 'Hello' out.png", "# Generate PNG image"},
		{prog + " list", "# Show available fonts"},
	}
	envVars := [][2]string{
		{"FIGLET_FONT", "Default font (default: " + DefaultFont + ")"},
		{"FIGLET_TEXT", "Default text (default: " + DefaultText + ")"},
		{"CANVAS_WIDTH", fmt.Sprintf("Canvas width in pixels (default: %d)", DefaultWidth)},
		{"CANVAS_HEIGHT", fmt.Sprintf("Canvas height in pixels (default: %d)", DefaultHeight)},
		{"FONT_COLOR", "Font color (default: " + DefaultColor + ")"},
	}

	note := strings.Join([]string{
		"Note:",
		"\tGenerates figlet ASCII art as text preview or PNG images with transparent",
		"\tbackground. Default canvas size is 728x90 (leaderboard format)",
		"\twith smart cropping enabled.",
	}, "\n")

	return strings.Join([]string{
		usage,
		section("Commands:", commands),
		section("Examples:", examples),
		section("Environment Variables:", envVars),
		note,
	}, "\n\n")
}

// section renders a header followed by left-aligned two-column rows.
func section(header string, rows [][2]string) string {
	var b strings.Builder
	b.WriteString(header)
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("\n\t%-39s %s", row[0], row[1]))
	}
	return b.String()
}
