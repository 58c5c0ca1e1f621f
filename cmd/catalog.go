package cmd

import (
	"fmt"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cygni-arcana/internal/catalog"
	"github.com/arcanaland/cygni-arcana/internal/chart"
	"github.com/arcanaland/cygni-arcana/internal/star"
)

// catalogCmd represents the catalog command group
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the star catalog",
	Long:  `Commands for listing and inspecting the stars in the catalog.`,
}

// catalogListCmd represents the catalog ls command
var catalogListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the stars in the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := loadCatalogFlag(cmd)
		if err != nil {
			fmt.Printf("Error loading catalog: %v\n", err)
			return
		}

		for _, s := range cat.Stars {
			marker := " "
			if s.IsGalacticCenter() || s.IsSol() {
				marker = "*"
			}

			tag := s.CardTag()
			fmt.Printf("%s %s  %s  %s (%s)\n",
				marker,
				colorize.HiWhiteString("%-20s", s.Name),
				colorize.CyanString("%10s ly", star.FormatDistance(s.DistanceLY)),
				s.Card, tag)
		}
	},
}

// catalogShowCmd represents the catalog show command
var catalogShowCmd = &cobra.Command{
	Use:   "show [star_name]",
	Short: "Display details for a single star",
	Long: `Show displays the catalog record for one star together with its
computed chart placement.

Examples:
  cygni-arcana catalog show Betelgeuse
  cygni-arcana catalog show "Alpha Centauri"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalogFlag(cmd)
		if err != nil {
			return fmt.Errorf("error loading catalog: %v", err)
		}

		s, err := cat.Find(args[0])
		if err != nil {
			return err
		}

		offset := chart.PerpendicularOffset(s.DistanceLY, s.LongitudeDeg)
		lane := chart.Lane(offset)

		fmt.Println()
		fmt.Println("  " + colorize.CyanString("Star:      ") + colorize.HiWhiteString(s.Name))
		fmt.Println("  " + colorize.CyanString("Card:      ") + colorize.HiWhiteString("%s (%s)", s.Card, s.CardTag()))
		if s.Arcana == star.Minor {
			fmt.Println("  " + colorize.CyanString("Arcana:    ") + colorize.HiWhiteString("Minor · %s", s.Suit))
		} else {
			fmt.Println("  " + colorize.CyanString("Arcana:    ") + colorize.HiWhiteString("Major"))
		}
		fmt.Println("  " + colorize.CyanString("Distance:  ") + colorize.HiWhiteString("%s ly from Sol", star.FormatDistance(s.DistanceLY)))
		fmt.Println("  " + colorize.CyanString("Longitude: ") + colorize.HiWhiteString("%g°", s.LongitudeDeg))
		fmt.Println("  " + colorize.CyanString("From GC:   ") + colorize.HiWhiteString("%s ly", star.FormatDistance(s.DistanceGC)))

		// Word-wrap the placement summary to the terminal.
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80
		}

		fmt.Println()
		for _, line := range wrapText(placementSummary(s, offset, lane), width-4) {
			fmt.Println("  " + line)
		}
		fmt.Println()

		return nil
	},
}

// placementSummary describes where a star lands on the chart
func placementSummary(s *star.Star, offset, lane float64) string {
	var side string
	switch {
	case lane < 0:
		side = "ahead of the Sun's galactic rotation, so it is charted on the left"
	case lane > 0:
		side = "behind the Sun's galactic rotation, so it is charted on the right"
	default:
		side = "essentially on the GC-Sol-GAC line, so it is charted in the center"
	}

	return fmt.Sprintf("%s lies %.1f light-years perpendicular to the GC-Sol-GAC line, %s column of the chart, "+
		"and is ranked by its %s light-year distance from the Galactic Center.",
		s.Name, offset, side, star.FormatDistance(s.DistanceGC))
}

// loadCatalogFlag loads the catalog named by --catalog, or the embedded one
func loadCatalogFlag(cmd *cobra.Command) (*catalog.Catalog, error) {
	catalogFlag, _ := cmd.Flags().GetString("catalog")
	if catalogFlag != "" {
		return catalog.Load(catalogFlag)
	}
	return catalog.Default()
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40 // Use a sensible default if width is too small
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)

	catalogCmd.PersistentFlags().StringP("catalog", "c", "", "Path to a catalog TOML file (default: embedded catalog)")
}
