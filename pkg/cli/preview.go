package cli

import (
	"fmt"

	"github.com/figtools/fig/pkg/figlet"
	"github.com/figtools/fig/pkg/logger"
)

var previewLog = logger.New("cli:preview")

// Preview renders text in a figlet font and prints the ASCII art to stdout.
// Empty font or text fall back to the environment defaults.
func Preview(font, text string) error {
	defaults := DefaultsFromEnv()
	if font == "" {
		font = defaults.Font
	}
	if text == "" {
		text = defaults.Text
	}
	previewLog.Printf("Previewing font=%q text=%q", font, text)

	art, err := figlet.Render(font, text)
	if err != nil {
		return err
	}
	fmt.Println(art)
	return nil
}
