package canvas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figtools/fig/pkg/render"
)

func TestParseColorNames(t *testing.T) {
	for _, name := range []string{"black", "white", "red", "green", "blue", "yellow", "cyan", "magenta", "gray"} {
		t.Run(name, func(t *testing.T) {
			c, err := ParseColor(name)
			require.NoError(t, err)
			require.NotNil(t, c)
		})
	}
}

func TestParseColorCaseAndSpace(t *testing.T) {
	c, err := ParseColor("  Black ")
	require.NoError(t, err)
	r, g, b, a := c.RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.EqualValues(t, 0xffff, a)
}

func TestParseColorHex(t *testing.T) {
	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	r, _, _, _ := c.RGBA()
	assert.EqualValues(t, 0xffff, r)
}

func TestParseColorShortHex(t *testing.T) {
	c, err := ParseColor("#f00")
	require.NoError(t, err)
	r, g, _, _ := c.RGBA()
	assert.EqualValues(t, 0xffff, r)
	assert.Zero(t, g)
}

func TestParseColorUnknown(t *testing.T) {
	for _, in := range []string{"chartreuse-ish", "#zzzzzz", "#12345", ""} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			require.Error(t, err)

			var rerr *render.Error
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, "InvalidColor", rerr.Kind)
		})
	}
}
