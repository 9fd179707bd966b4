package cli

import (
	"fmt"
	"strings"

	"github.com/figtools/fig/pkg/console"
	"github.com/figtools/fig/pkg/figlet"
	"github.com/figtools/fig/pkg/logger"
	"github.com/figtools/fig/pkg/tty"
)

var listLog = logger.New("cli:list")

// pageThreshold is the line count above which the font listing goes
// through a pager instead of straight to stdout.
const pageThreshold = 30

// ListFonts prints the sorted names of every available figlet font, paging
// the output when it is long and stdout is a terminal.
func ListFonts() error {
	fonts, err := figlet.Fonts()
	if err != nil {
		return err
	}

	lines := make([]string, 0, len(fonts)+1)
	lines = append(lines, console.FormatListHeader("Available fonts:"))
	for _, font := range fonts {
		lines = append(lines, console.FormatListItem(font))
	}
	output := strings.Join(lines, "\n")

	if len(lines) > pageThreshold && tty.IsStdoutTerminal() {
		if err := console.Page(output); err == nil {
			return nil
		}
		listLog.Print("Pager unavailable, printing directly")
	}
	fmt.Println(output)
	return nil
}
