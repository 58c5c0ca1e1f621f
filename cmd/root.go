package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cygni-arcana",
	Short: "Chart notable stars mapped to tarot cards",
	Long: `Cygni Arcana maps a curated catalog of notable stars to tarot cards by
their galactic coordinates and renders a chart placing each star by its
ahead/behind relation to the Sun's galactic orbit and its ordinal rank by
distance from the Galactic Center.`,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
