package cli

import (
	"os"
	"strconv"

	"github.com/figtools/fig/pkg/logger"
)

var configLog = logger.New("cli:config")

// Built-in defaults, overridden by environment variables, overridden by
// explicit arguments.
const (
	DefaultFont       = "larry3d"
	DefaultText       = "Hello, World!"
	DefaultColor      = "black"
	DefaultWidth      = 728
	DefaultHeight     = 90
	DefaultOutputFile = "figlet_output.png"

	// canvasPadding is the fixed background margin kept around the drawn
	// art, also used as the smart-crop margin.
	canvasPadding = 20
)

// Defaults holds the environment-resolved render settings for one
// invocation.
type Defaults struct {
	Font   string
	Text   string
	Color  string
	Width  int
	Height int
}

// DefaultsFromEnv reads FIGLET_FONT, FIGLET_TEXT, FONT_COLOR, CANVAS_WIDTH
// and CANVAS_HEIGHT, falling back to the built-in defaults for unset or
// malformed values.
func DefaultsFromEnv() Defaults {
	return Defaults{
		Font:   envOr("FIGLET_FONT", DefaultFont),
		Text:   envOr("FIGLET_TEXT", DefaultText),
		Color:  envOr("FONT_COLOR", DefaultColor),
		Width:  envIntOr("CANVAS_WIDTH", DefaultWidth),
		Height: envIntOr("CANVAS_HEIGHT", DefaultHeight),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		configLog.Printf("Ignoring malformed %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}
