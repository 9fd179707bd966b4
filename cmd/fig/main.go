package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/figtools/fig/pkg/cli"
	"github.com/figtools/fig/pkg/console"
	"github.com/figtools/fig/pkg/render"
)

// Build-time variable set by GoReleaser
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "fig",
	Short:   "Render figlet ASCII-art banners as terminal previews or PNG images",
	Version: version,
	Long: `fig renders figlet-style ASCII-art banners from text, either previewing
them on the terminal or rasterizing them to a transparent-background PNG.

Common Tasks:
  fig preview slant            # Preview the slant font with default text
  fig generate slant Hi o.png  # Generate a PNG banner
  fig list                     # Show available fonts
  fig help                     # Full usage, including implicit forms`,
	// Every token is positional data for the resolver, including -h and
	// --help: dispatch is driven purely by the argument shapes.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Run(args)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var rerr *render.Error
		if errors.As(err, &rerr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", rerr)
		} else {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		}
		os.Exit(1)
	}
}
