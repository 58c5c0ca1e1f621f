package chart

import "fmt"

// Theme holds the chart color palette
type Theme struct {
	Name          string
	Background    string
	Text          string
	Grid          string
	BlackHoleEdge string
	BlackHoleGlow string
	SolEdge       string
}

// Dark is the default theme
var Dark = Theme{
	Name:          "dark",
	Background:    "#000000",
	Text:          "#FFFFFF",
	Grid:          "#FFFFFF",
	BlackHoleEdge: "#FFFFFF",
	BlackHoleGlow: "#FF8C00",
	SolEdge:       "#FFA500",
}

var Light = Theme{
	Name:          "light",
	Background:    "#FFFFFF",
	Text:          "#000000",
	Grid:          "#000000",
	BlackHoleEdge: "#000000",
	BlackHoleGlow: "#FFD700", // golden glow for visibility on white
	SolEdge:       "#FFA500",
}

// ThemeByName returns the theme for a name ("dark" or "light")
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return Theme{}, fmt.Errorf("unknown theme: %s (expected dark or light)", name)
	}
}
