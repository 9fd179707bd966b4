// Package cli resolves command-line tokens into an intent and runs the
// resulting command: printing help, listing fonts, previewing ASCII art on
// the terminal, or generating a PNG banner.
package cli

import (
	"strings"

	"github.com/figtools/fig/pkg/logger"
)

var resolverLog = logger.New("cli:resolver")

// imageSuffix marks a trailing token as an output path. The match is a
// literal, case-sensitive suffix check.
const imageSuffix = ".png"

// IntentKind enumerates what an invocation asks for.
type IntentKind int

const (
	IntentHelp IntentKind = iota
	IntentList
	IntentPreview
	IntentGenerate
	IntentUnexpected
)

// Intent is the resolved command plus its parameters. Unset parameters stay
// empty and are defaulted downstream; Args holds the raw tokens for the
// unexpected case.
type Intent struct {
	Kind     IntentKind
	Font     string
	Text     string
	Filename string
	Args     []string
}

// Resolve maps raw argument tokens to exactly one intent.
//
// Explicit keyword shapes (help/list/preview/generate) win over the implicit
// positional shapes, and the output-path suffix check runs before the
// two-bare-token preview form. The shapes are matched on exact token counts:
// a keyword followed by too many tokens is not that command, it falls
// through to the implicit shapes and finally to the unexpected intent.
//
// isFont disambiguates the single-argument preview form. It must be a pure
// membership probe that returns false on any enumeration failure, so a
// broken font listing degrades to treating the argument as text instead of
// aborting the invocation.
func Resolve(args []string, isFont func(string) bool) Intent {
	intent := resolve(args, isFont)
	resolverLog.Printf("Resolved %q to kind=%d font=%q text=%q filename=%q", args, intent.Kind, intent.Font, intent.Text, intent.Filename)
	return intent
}

func resolve(args []string, isFont func(string) bool) Intent {
	switch len(args) {
	case 0:
		return Intent{Kind: IntentHelp}

	case 1:
		switch args[0] {
		case "help", "-h", "--help":
			return Intent{Kind: IntentHelp}
		case "list":
			return Intent{Kind: IntentList}
		case "preview":
			return Intent{Kind: IntentPreview}
		case "generate":
			return Intent{Kind: IntentGenerate}
		}
		if strings.HasSuffix(args[0], imageSuffix) {
			return Intent{Kind: IntentGenerate, Filename: args[0]}
		}
		return Intent{Kind: IntentPreview, Font: args[0]}

	case 2:
		switch args[0] {
		case "preview":
			if isFont(args[1]) {
				return Intent{Kind: IntentPreview, Font: args[1]}
			}
			return Intent{Kind: IntentPreview, Text: args[1]}
		case "generate":
			return Intent{Kind: IntentGenerate, Font: args[1]}
		}
		if strings.HasSuffix(args[1], imageSuffix) {
			return Intent{Kind: IntentGenerate, Text: args[0], Filename: args[1]}
		}
		return Intent{Kind: IntentPreview, Font: args[0], Text: args[1]}

	case 3:
		switch args[0] {
		case "preview":
			return Intent{Kind: IntentPreview, Font: args[1], Text: args[2]}
		case "generate":
			return Intent{Kind: IntentGenerate, Font: args[1], Text: args[2]}
		}
		if strings.HasSuffix(args[2], imageSuffix) {
			return Intent{Kind: IntentGenerate, Font: args[0], Text: args[1], Filename: args[2]}
		}

	case 4:
		if args[0] == "generate" {
			return Intent{Kind: IntentGenerate, Font: args[1], Text: args[2], Filename: args[3]}
		}
	}

	return Intent{Kind: IntentUnexpected, Args: args}
}

// formatArgs renders tokens in the bracketed, single-quoted shape the
// unexpected-arguments notice has always used, e.g. ['a', 'b', 'c'].
func formatArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = "'" + a + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
