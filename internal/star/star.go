package star

import (
	"fmt"
	"strconv"
)

// Arcana types
const (
	Major = "major"
	Minor = "minor"
)

// Star represents a catalog entry mapping a star to a tarot card
type Star struct {
	Name         string  `toml:"name"`
	DistanceLY   float64 `toml:"distance_ly"`   // light-years from Sol
	LongitudeDeg float64 `toml:"longitude_deg"` // galactic longitude, 0 points from Sol towards GC
	DistanceGC   float64 `toml:"distance_gc"`   // light-years from the Galactic Center
	Arcana       string  `toml:"arcana"`        // major or minor
	Card         string  `toml:"card"`          // card name for major, suit display name for minor
	Numeral      string  `toml:"numeral"`       // Roman numeral, major arcana only
	Suit         string  `toml:"suit"`          // wands, cups, swords, pentacles; minor arcana only
	Size         float64 `toml:"size"`          // marker size on the chart
	Color        string  `toml:"color"`         // hex marker color
	Highlight    string  `toml:"highlight"`     // hex highlight color
}

// numeralValues maps the Major Arcana numerals to card numbers.
// The Fool is numbered "0", matching the 00-21 deck convention.
var numeralValues = map[string]int{
	"0": 0, "I": 1, "II": 2, "III": 3, "IV": 4, "V": 5, "VI": 6,
	"VII": 7, "VIII": 8, "IX": 9, "X": 10, "XI": 11, "XII": 12,
	"XIII": 13, "XIV": 14, "XV": 15, "XVI": 16, "XVII": 17,
	"XVIII": 18, "XIX": 19, "XX": 20, "XXI": 21,
}

// suitGlyphs maps minor arcana suits to their chart glyphs
var suitGlyphs = map[string]string{
	"wands":     "♣",
	"cups":      "♥",
	"swords":    "♠",
	"pentacles": "♦",
}

// Suits lists the minor arcana suits in canonical order
var Suits = []string{"wands", "cups", "swords", "pentacles"}

// ValidNumeral reports whether s is a valid Major Arcana numeral
func ValidNumeral(s string) bool {
	_, ok := numeralValues[s]
	return ok
}

// NumeralValue returns the card number for a Major Arcana numeral
func NumeralValue(s string) (int, bool) {
	n, ok := numeralValues[s]
	return n, ok
}

// ValidSuit reports whether s is a known minor arcana suit
func ValidSuit(s string) bool {
	_, ok := suitGlyphs[s]
	return ok
}

// SuitGlyph returns the glyph for a minor arcana suit
func SuitGlyph(suit string) string {
	if glyph, ok := suitGlyphs[suit]; ok {
		return glyph
	}
	return "•"
}

// IsGalacticCenter reports whether the record is the Galactic Center marker
func (s Star) IsGalacticCenter() bool {
	return s.DistanceGC == 0
}

// IsSol reports whether the record is the Sol reference point
func (s Star) IsSol() bool {
	return s.DistanceLY == 0 && !s.IsGalacticCenter()
}

// CardTag returns the parenthesized card tag: the Roman numeral for
// Major Arcana, the suit glyph for Minor Arcana
func (s Star) CardTag() string {
	if s.Arcana == Minor {
		return SuitGlyph(s.Suit)
	}
	return s.Numeral
}

// Label returns the chart label, e.g. "Deneb (1500 ly) The High Priestess (II)"
func (s Star) Label() string {
	return fmt.Sprintf("%s (%s ly) %s (%s)", s.Name, FormatDistance(s.DistanceLY), s.Card, s.CardTag())
}

// FormatDistance formats a light-year distance without trailing zeros
func FormatDistance(ly float64) string {
	return strconv.FormatFloat(ly, 'f', -1, 64)
}
