package canvas

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/figtools/fig/pkg/render"
)

// namedColors covers the color names the FONT_COLOR variable accepts.
var namedColors = map[string]color.Color{
	"black":   color.RGBA{0x00, 0x00, 0x00, 0xff},
	"white":   color.RGBA{0xff, 0xff, 0xff, 0xff},
	"red":     color.RGBA{0xff, 0x00, 0x00, 0xff},
	"green":   color.RGBA{0x00, 0x80, 0x00, 0xff},
	"blue":    color.RGBA{0x00, 0x00, 0xff, 0xff},
	"yellow":  color.RGBA{0xff, 0xff, 0x00, 0xff},
	"cyan":    color.RGBA{0x00, 0xff, 0xff, 0xff},
	"magenta": color.RGBA{0xff, 0x00, 0xff, 0xff},
	"gray":    color.RGBA{0x80, 0x80, 0x80, 0xff},
	"grey":    color.RGBA{0x80, 0x80, 0x80, 0xff},
	"orange":  color.RGBA{0xff, 0xa5, 0x00, 0xff},
	"purple":  color.RGBA{0x80, 0x00, 0x80, 0xff},
}

// ParseColor resolves a FONT_COLOR value: a named color, or "#rgb"/"#rrggbb"
// hex notation.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}

	if strings.HasPrefix(name, "#") {
		hex := name
		if len(hex) == 4 {
			hex = fmt.Sprintf("#%c%c%c%c%c%c", hex[1], hex[1], hex[2], hex[2], hex[3], hex[3])
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, render.Errorf("InvalidColor", fmt.Errorf("malformed hex color %q: %w", s, err))
		}
		return c, nil
	}

	return nil, render.Errorf("InvalidColor", fmt.Errorf("unknown color %q", s))
}
