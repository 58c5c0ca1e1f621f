package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cygni-arcana/internal/chart"
	"github.com/arcanaland/cygni-arcana/internal/config"
)

// setThemeCmd represents the set-theme command
var setThemeCmd = &cobra.Command{
	Use:   "set-theme [dark|light]",
	Short: "Set the default chart theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		themeName := args[0]

		// Make sure the theme exists before persisting it
		if _, err := chart.ThemeByName(themeName); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := config.SetTheme(themeName); err != nil {
			fmt.Printf("Error setting theme: %v\n", err)
			return
		}

		fmt.Printf("Default theme set to: %s\n", themeName)
	},
}

func init() {
	RootCmd.AddCommand(setThemeCmd)
}
