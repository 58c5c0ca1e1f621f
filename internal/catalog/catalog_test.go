package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cygni-arcana/internal/star"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Cygni Arcana", cat.Name)
	assert.Len(t, cat.Stars, 26)

	results := cat.Validate()
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)

	// 22 major arcana plus the four suits.
	majors, minors := 0, 0
	for _, s := range cat.Stars {
		switch s.Arcana {
		case star.Major:
			majors++
		case star.Minor:
			minors++
		}
	}
	assert.Equal(t, 22, majors)
	assert.Equal(t, 4, minors)
}

func TestFind(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	s, err := cat.Find("betelgeuse")
	require.NoError(t, err)
	assert.Equal(t, "The Tower", s.Card)
	assert.Equal(t, "XVI", s.Numeral)

	_, err = cat.Find("Proxima b")
	assert.Error(t, err)
}

// validStar returns a well-formed major arcana record for validation tests
func validStar(name, card, numeral string) star.Star {
	return star.Star{
		Name:         name,
		DistanceLY:   100,
		LongitudeDeg: 45,
		DistanceGC:   26100,
		Arcana:       star.Major,
		Card:         card,
		Numeral:      numeral,
		Size:         25,
		Color:        "#FFFFFF",
		Highlight:    "#FFD700",
	}
}

func solStar() star.Star {
	return star.Star{
		Name:       "Sol",
		DistanceLY: 0,
		DistanceGC: 26000,
		Arcana:     star.Major,
		Card:       "The Sun",
		Numeral:    "XIX",
		Size:       40,
		Color:      "#FFFF00",
		Highlight:  "#FFD700",
	}
}

func TestValidateDuplicateCard(t *testing.T) {
	cat := &Catalog{Stars: []star.Star{
		solStar(),
		validStar("Vega", "The Empress", "III"),
		validStar("Deneb", "The Empress", "II"),
	}}

	results := cat.Validate()
	err := results.Err()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Problems[0], "duplicate card assignment")
}

func TestValidateRecordRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*star.Star)
		wantErr string
	}{
		{
			name:    "missing name",
			mutate:  func(s *star.Star) { s.Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "missing card",
			mutate:  func(s *star.Star) { s.Card = "" },
			wantErr: "card is required",
		},
		{
			name:    "negative distance",
			mutate:  func(s *star.Star) { s.DistanceLY = -5 },
			wantErr: "distance_ly must not be negative",
		},
		{
			name:    "longitude too large",
			mutate:  func(s *star.Star) { s.LongitudeDeg = 360 },
			wantErr: "out of range",
		},
		{
			name:    "longitude negative",
			mutate:  func(s *star.Star) { s.LongitudeDeg = -10 },
			wantErr: "out of range",
		},
		{
			name:    "major numeral out of range",
			mutate:  func(s *star.Star) { s.Numeral = "XXII" },
			wantErr: "invalid major arcana numeral",
		},
		{
			name:    "major carrying a suit",
			mutate:  func(s *star.Star) { s.Suit = "wands" },
			wantErr: "must not carry a suit",
		},
		{
			name: "minor with unknown suit",
			mutate: func(s *star.Star) {
				s.Arcana = star.Minor
				s.Numeral = ""
				s.Suit = "coins"
			},
			wantErr: "invalid minor arcana suit",
		},
		{
			name: "minor carrying a numeral",
			mutate: func(s *star.Star) {
				s.Arcana = star.Minor
				s.Suit = "wands"
			},
			wantErr: "must not carry a numeral",
		},
		{
			name:    "unknown arcana type",
			mutate:  func(s *star.Star) { s.Arcana = "greater" },
			wantErr: "arcana must be",
		},
		{
			name:    "unparseable color",
			mutate:  func(s *star.Star) { s.Color = "gold" },
			wantErr: "invalid color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStar("Vega", "The Empress", "III")
			tt.mutate(&s)
			cat := &Catalog{Stars: []star.Star{solStar(), s}}

			results := cat.Validate()
			require.NotEmpty(t, results.Errors)

			found := false
			for _, e := range results.Errors {
				if strings.Contains(e, tt.wantErr) {
					found = true
					break
				}
			}
			assert.True(t, found, "expected an error containing %q, got %v", tt.wantErr, results.Errors)
		})
	}
}

func TestValidateWarnsWithoutSol(t *testing.T) {
	cat := &Catalog{Stars: []star.Star{validStar("Vega", "The Empress", "III")}}

	results := cat.Validate()
	assert.Empty(t, results.Errors)
	require.Len(t, results.Warnings, 1)
	assert.Contains(t, results.Warnings[0], "no Sol reference record")
}

func TestValidateEmptyCatalog(t *testing.T) {
	cat := &Catalog{}
	results := cat.Validate()
	require.NotEmpty(t, results.Errors)
	assert.Contains(t, results.Errors[0], "no star records")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")

	doc := `
[catalog]
name = "Test Catalog"

[[star]]
name = "Vega"
distance_ly = 25
longitude_deg = 67
distance_gc = 25975
arcana = "major"
card = "The Empress"
numeral = "III"
size = 20
color = "#E0FFFF"
highlight = "#228B22"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Catalog", cat.Name)
	require.Len(t, cat.Stars, 1)
	assert.Equal(t, "Vega", cat.Stars[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file not found")
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[star]\nname="), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing catalog file")
}
