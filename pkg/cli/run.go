package cli

import (
	"fmt"

	"github.com/figtools/fig/pkg/figlet"
)

// Run resolves args and executes the resulting command. The unexpected-shape
// fallback prints a notice plus the help text and succeeds; only renderer
// failures surface as errors.
func Run(args []string) error {
	intent := Resolve(args, figlet.IsFont)

	switch intent.Kind {
	case IntentHelp:
		fmt.Println(Help())
		return nil
	case IntentList:
		return ListFonts()
	case IntentPreview:
		return Preview(intent.Font, intent.Text)
	case IntentGenerate:
		return Generate(intent.Font, intent.Text, intent.Filename)
	default:
		fmt.Printf("Unexpected arguments: %s\n", formatArgs(intent.Args))
		fmt.Println(Help())
		return nil
	}
}
