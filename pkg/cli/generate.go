package cli

import (
	"fmt"
	"strings"

	"github.com/figtools/fig/pkg/canvas"
	"github.com/figtools/fig/pkg/console"
	"github.com/figtools/fig/pkg/figlet"
	"github.com/figtools/fig/pkg/logger"
)

var generateLog = logger.New("cli:generate")

// Generate renders text in a figlet font and saves it as a PNG banner.
// Empty parameters fall back to the environment defaults and the standard
// output filename.
func Generate(font, text, filename string) error {
	defaults := DefaultsFromEnv()

	// A lone .png argument after the generate keyword is the destination,
	// not a font name (args shift left).
	if strings.HasSuffix(font, imageSuffix) && text == "" && filename == "" {
		filename = font
		font = ""
	}

	if font == "" {
		font = defaults.Font
	}
	if text == "" {
		text = defaults.Text
	}
	if filename == "" {
		filename = DefaultOutputFile
	}
	generateLog.Printf("Generating font=%q text=%q filename=%q canvas=%dx%d color=%q",
		font, text, filename, defaults.Width, defaults.Height, defaults.Color)

	art, err := figlet.Render(font, text)
	if err != nil {
		return err
	}

	fontColor, err := canvas.ParseColor(defaults.Color)
	if err != nil {
		return err
	}

	cfg := canvas.Config{
		Width:       defaults.Width,
		Height:      defaults.Height,
		Padding:     canvasPadding,
		Color:       fontColor,
		Transparent: true,
		Crop:        canvas.CropSmart,
	}
	if err := canvas.RenderToFile(art, cfg, filename); err != nil {
		return err
	}

	fmt.Println(console.FormatSuccessMessage("Generated PNG image: " + console.FormatFilePath(filename)))
	return nil
}
