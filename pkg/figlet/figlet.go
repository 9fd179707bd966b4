// Package figlet wraps the bundled figlet font engine behind the two
// operations the CLI needs: rendering text in a named font and enumerating
// the available font names.
package figlet

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/common-nighthawk/go-figure"

	"github.com/figtools/fig/pkg/logger"
	"github.com/figtools/fig/pkg/render"
)

var figletLog = logger.New("figlet:figlet")

const fontExt = ".flf"

// Fonts returns the names of every bundled figlet font, sorted.
func Fonts() ([]string, error) {
	names := figure.AssetNames()
	if len(names) == 0 {
		return nil, render.Errorf("FontListUnavailable", errors.New("no bundled figlet fonts found"))
	}

	fonts := make([]string, 0, len(names))
	for _, name := range names {
		base := path.Base(name)
		if !strings.HasSuffix(base, fontExt) {
			continue
		}
		fonts = append(fonts, strings.TrimSuffix(base, fontExt))
	}
	sort.Strings(fonts)
	figletLog.Printf("Enumerated %d bundled fonts", len(fonts))
	return fonts, nil
}

// IsFont reports whether name is a bundled font. Enumeration failures read
// as "not a font" so callers can use this as a best-effort probe.
func IsFont(name string) bool {
	fonts, err := Fonts()
	if err != nil {
		figletLog.Printf("Font probe for %q degraded to false: %v", name, err)
		return false
	}
	for _, f := range fonts {
		if f == name {
			return true
		}
	}
	return false
}

// Render shapes text into ASCII art using the named font. Unknown fonts and
// unshapable input fail with a *render.Error.
func Render(font, text string) (art string, err error) {
	if !IsFont(font) {
		return "", render.Errorf("FontNotFound", fmt.Errorf("unknown figlet font %q", font))
	}

	// The engine panics on characters the font cannot shape in strict mode.
	defer func() {
		if r := recover(); r != nil {
			err = render.Errorf("RenderFailed", fmt.Errorf("rendering %q with font %q: %v", text, font, r))
		}
	}()

	art = figure.NewFigure(text, font, true).String()
	figletLog.Printf("Rendered %d chars of input to %d bytes of art with font %q", len(text), len(art), font)
	return art, nil
}
