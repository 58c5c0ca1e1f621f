package cmd

import (
	"fmt"

	"github.com/arcanaland/cygni-arcana/internal/catalog"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [catalog.toml]",
	Short: "Validate a star catalog file",
	Long: `Validate checks a catalog TOML file against the record rules: required
fields, longitude range, the one-to-one star-to-card assignment, and the
numeral/suit rules for Major and Minor Arcana records.

With no argument the embedded default catalog is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cat *catalog.Catalog
		var err error
		source := "embedded catalog"

		if len(args) == 1 {
			source = args[0]
			cat, err = catalog.Load(source)
		} else {
			cat, err = catalog.Default()
		}
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		results := cat.Validate()

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Catalog '%s' is valid: %d stars, one card each.\n", source, len(cat.Stars))
		} else {
			fmt.Printf("❌ Catalog '%s' has %d validation errors:\n", source, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
