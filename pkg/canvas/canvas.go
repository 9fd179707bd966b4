// Package canvas rasterizes ASCII art onto a PNG canvas. The art is drawn
// line by line with a monospaced face so column alignment survives, the
// background is left fully transparent by default, and smart cropping trims
// uniform margins down to the drawn content.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/figtools/fig/pkg/logger"
	"github.com/figtools/fig/pkg/render"
)

var canvasLog = logger.New("canvas:canvas")

// CropMode selects how the canvas is finalized after drawing.
type CropMode int

const (
	// CropNone keeps the configured canvas dimensions.
	CropNone CropMode = iota
	// CropSmart trims uniform background margins down to the content
	// bounding box, keeping the configured padding around it.
	CropSmart
)

// Config carries the style settings for one rasterization.
type Config struct {
	Width       int
	Height      int
	Padding     int
	Color       color.Color
	Transparent bool
	Crop        CropMode
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return render.Errorf("InvalidConfig", fmt.Errorf("canvas dimensions must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Padding < 0 {
		return render.Errorf("InvalidConfig", fmt.Errorf("padding must not be negative, got %d", c.Padding))
	}
	if c.Color == nil {
		return render.Errorf("InvalidConfig", fmt.Errorf("no font color configured"))
	}
	return nil
}

// RenderToFile draws art onto a canvas configured by cfg and writes it to
// path as a PNG. Content that does not fit the canvas is clipped.
func RenderToFile(art string, cfg Config, path string) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	img := rasterize(art, cfg)
	if cfg.Crop == CropSmart {
		img = smartCrop(img, cfg)
	}

	f, err := os.Create(path)
	if err != nil {
		return render.Errorf("SaveFailed", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return render.Errorf("EncodeFailed", err)
	}
	if err := f.Close(); err != nil {
		return render.Errorf("SaveFailed", err)
	}

	bounds := img.Bounds()
	canvasLog.Printf("Wrote %dx%d PNG to %s", bounds.Dx(), bounds.Dy(), path)
	return nil
}

func rasterize(art string, cfg Config) *image.RGBA {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	if !cfg.Transparent {
		draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(cfg.Color),
		Face: face,
	}

	y := cfg.Padding + metrics.Ascent.Ceil()
	for _, line := range strings.Split(strings.TrimRight(art, "\n"), "\n") {
		d.Dot = fixed.Point26_6{
			X: fixed.I(cfg.Padding),
			Y: fixed.I(y),
		}
		d.DrawString(line)
		y += lineHeight
	}
	return img
}

// smartCrop trims margins that carry no content, leaving cfg.Padding worth
// of background around the content bounding box. A canvas with no drawn
// pixels is returned unchanged.
func smartCrop(img *image.RGBA, cfg Config) *image.RGBA {
	content, ok := contentBounds(img, cfg.Transparent)
	if !ok {
		return img
	}

	content = content.Inset(-cfg.Padding).Intersect(img.Bounds())
	cropped := image.NewRGBA(image.Rect(0, 0, content.Dx(), content.Dy()))
	draw.Draw(cropped, cropped.Bounds(), img, content.Min, draw.Src)
	canvasLog.Printf("Smart crop %v -> %v", img.Bounds(), cropped.Bounds())
	return cropped
}

// contentBounds scans for the bounding box of pixels that differ from the
// background: any non-zero alpha on a transparent canvas, anything
// non-white on an opaque one.
func contentBounds(img *image.RGBA, transparent bool) (image.Rectangle, bool) {
	bounds := img.Bounds()
	found := false
	box := image.Rectangle{}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			isBackground := c.A == 0
			if !transparent {
				isBackground = c.R == 0xff && c.G == 0xff && c.B == 0xff
			}
			if isBackground {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if !found {
				box = px
				found = true
			} else {
				box = box.Union(px)
			}
		}
	}
	return box, found
}
