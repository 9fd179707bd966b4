package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubFonts returns a membership probe over a fixed font set.
func stubFonts(known ...string) func(string) bool {
	set := make(map[string]bool, len(known))
	for _, k := range known {
		set[k] = true
	}
	return func(name string) bool { return set[name] }
}

func TestResolve(t *testing.T) {
	isFont := stubFonts("slant", "standard", "larry3d")

	tests := []struct {
		name string
		args []string
		want Intent
	}{
		// keyword shapes
		{"empty", nil, Intent{Kind: IntentHelp}},
		{"help word", []string{"help"}, Intent{Kind: IntentHelp}},
		{"help short flag", []string{"-h"}, Intent{Kind: IntentHelp}},
		{"help long flag", []string{"--help"}, Intent{Kind: IntentHelp}},
		{"list", []string{"list"}, Intent{Kind: IntentList}},
		{"preview bare", []string{"preview"}, Intent{Kind: IntentPreview}},
		{"preview known font", []string{"preview", "slant"}, Intent{Kind: IntentPreview, Font: "slant"}},
		{"preview unknown arg is text", []string{"preview", "Test"}, Intent{Kind: IntentPreview, Text: "Test"}},
		{"preview explicit", []string{"preview", "slant", "Hello"}, Intent{Kind: IntentPreview, Font: "slant", Text: "Hello"}},
		{"generate bare", []string{"generate"}, Intent{Kind: IntentGenerate}},
		{"generate font", []string{"generate", "slant"}, Intent{Kind: IntentGenerate, Font: "slant"}},
		{"generate font text", []string{"generate", "slant", "Hi"}, Intent{Kind: IntentGenerate, Font: "slant", Text: "Hi"}},
		{"generate full", []string{"generate", "slant", "Hi", "out.png"}, Intent{Kind: IntentGenerate, Font: "slant", Text: "Hi", Filename: "out.png"}},

		// implicit shapes
		{"implicit file only", []string{"out.png"}, Intent{Kind: IntentGenerate, Filename: "out.png"}},
		{"implicit text file", []string{"Custom Text", "out.png"}, Intent{Kind: IntentGenerate, Text: "Custom Text", Filename: "out.png"}},
		{"implicit font text file", []string{"slant", "Hi", "out.png"}, Intent{Kind: IntentGenerate, Font: "slant", Text: "Hi", Filename: "out.png"}},
		{"implicit font preview", []string{"slant"}, Intent{Kind: IntentPreview, Font: "slant"}},
		{"implicit font text preview", []string{"slant", "Hi"}, Intent{Kind: IntentPreview, Font: "slant", Text: "Hi"}},

		// exact-shape matching: a keyword with the wrong arity is not
		// that command
		{"list with extra token", []string{"list", "x"}, Intent{Kind: IntentPreview, Font: "list", Text: "x"}},
		{"preview overlong", []string{"preview", "a", "b", "c"}, Intent{Kind: IntentUnexpected, Args: []string{"preview", "a", "b", "c"}}},
		{"generate overlong", []string{"generate", "f", "t", "file.png", "extra"}, Intent{Kind: IntentUnexpected, Args: []string{"generate", "f", "t", "file.png", "extra"}}},

		// suffix detection is literal and case-sensitive
		{"uppercase suffix is not a file", []string{"out.PNG"}, Intent{Kind: IntentPreview, Font: "out.PNG"}},
		{"suffix beats two-token preview", []string{"slant", "out.png"}, Intent{Kind: IntentGenerate, Text: "slant", Filename: "out.png"}},

		// fallback
		{"three bare tokens no suffix", []string{"a", "b", "c"}, Intent{Kind: IntentUnexpected, Args: []string{"a", "b", "c"}}},
		{"five bare tokens", []string{"a", "b", "c", "d", "e"}, Intent{Kind: IntentUnexpected, Args: []string{"a", "b", "c", "d", "e"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.args, isFont))
		})
	}
}

// TestResolveFontProbeDegraded locks in the graceful fallback: when the
// font probe cannot answer (always false), the single preview argument is
// treated as text rather than failing the invocation.
func TestResolveFontProbeDegraded(t *testing.T) {
	brokenProbe := func(string) bool { return false }

	got := Resolve([]string{"preview", "slant"}, brokenProbe)
	assert.Equal(t, Intent{Kind: IntentPreview, Text: "slant"}, got)
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "['a', 'b', 'c', 'd', 'e']", formatArgs([]string{"a", "b", "c", "d", "e"}))
	assert.Equal(t, "['one two']", formatArgs([]string{"one two"}))
	assert.Equal(t, "[]", formatArgs(nil))
}
