package cmd

import (
	"fmt"
	"path/filepath"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cygni-arcana/internal/catalog"
	"github.com/arcanaland/cygni-arcana/internal/chart"
	"github.com/arcanaland/cygni-arcana/internal/config"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the star-to-tarot chart as a PNG image",
	Long: `Plot renders the full Cygni Arcana chart: every star in the catalog is
placed by its ahead/behind lane relative to the Sun's galactic rotation
and its ordinal rank by distance from the Galactic Center, labeled with
its tarot card, and written to a PNG file.

The embedded 26-star catalog is used unless --catalog points to another
catalog file. The catalog is validated before anything is drawn.

Examples:
  cygni-arcana plot
  cygni-arcana plot --theme light --output chart.png
  cygni-arcana plot --catalog ./my-catalog.toml --height 600`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogFlag, _ := cmd.Flags().GetString("catalog")
		themeFlag, _ := cmd.Flags().GetString("theme")
		outputFlag, _ := cmd.Flags().GetString("output")
		heightFlag, _ := cmd.Flags().GetUint("height")

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		themeName := themeFlag
		if themeName == "" {
			themeName = cfg.Theme
		}
		theme, err := chart.ThemeByName(themeName)
		if err != nil {
			return err
		}

		var cat *catalog.Catalog
		if catalogFlag != "" {
			cat, err = catalog.Load(catalogFlag)
		} else {
			cat, err = catalog.Default()
		}
		if err != nil {
			return err
		}

		// Refuse to render anything from a malformed catalog.
		results := cat.Validate()
		if err := results.Err(); err != nil {
			return err
		}

		img, err := chart.Render(cat.Stars, theme)
		if err != nil {
			return fmt.Errorf("error rendering chart: %v", err)
		}

		if heightFlag > 0 {
			img = chart.Downscale(img, heightFlag)
		}

		output := outputFlag
		if output == "" {
			output = filepath.Join(cfg.OutputDir,
				fmt.Sprintf("cygni_arcana_plot_%s.png", theme.Name))
		}

		if err := chart.Save(img, output); err != nil {
			return err
		}

		fmt.Printf("%s %s (%d stars, %s theme)\n",
			colorize.GreenString("Chart written to"),
			colorize.HiWhiteString(output), len(cat.Stars), theme.Name)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringP("catalog", "c", "", "Path to a catalog TOML file (default: embedded catalog)")
	plotCmd.Flags().StringP("theme", "t", "", "Chart theme: dark or light (default from config)")
	plotCmd.Flags().StringP("output", "o", "", "Output PNG path")
	plotCmd.Flags().Uint("height", 0, "Downscale the chart to this pixel height before saving")
}
