package catalog

import (
	"fmt"
	"strings"

	"github.com/arcanaland/cygni-arcana/internal/star"
	"github.com/lucasb-eyer/go-colorful"
)

// ValidationResults collects the problems found in a catalog
type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Err returns a ValidationError when any errors were recorded
func (r ValidationResults) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return &ValidationError{Problems: r.Errors}
}

// ValidationError reports a malformed or incomplete catalog
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("invalid catalog: %s", e.Problems[0])
	}
	return fmt.Sprintf("invalid catalog: %d problems, first: %s", len(e.Problems), e.Problems[0])
}

// Validate checks a catalog against the record rules: required fields,
// longitude range, unique star-to-card bijection, numeral/suit rules per
// arcana type, and parseable colors.
func (c *Catalog) Validate() ValidationResults {
	results := ValidationResults{}

	seenNames := make(map[string]string)
	seenCards := make(map[string]string)
	foundSol := false

	for i, s := range c.Stars {
		ref := s.Name
		if ref == "" {
			ref = fmt.Sprintf("star #%d", i+1)
			results.Errors = append(results.Errors, fmt.Sprintf("%s: name is required", ref))
		}

		if s.Card == "" {
			results.Errors = append(results.Errors, fmt.Sprintf("%s: card is required", ref))
		}

		if s.DistanceLY < 0 {
			results.Errors = append(results.Errors, fmt.Sprintf("%s: distance_ly must not be negative", ref))
		}

		if s.LongitudeDeg < 0 || s.LongitudeDeg >= 360 {
			results.Errors = append(results.Errors,
				fmt.Sprintf("%s: longitude_deg %g out of range [0, 360)", ref, s.LongitudeDeg))
		}

		switch s.Arcana {
		case star.Major:
			if !star.ValidNumeral(s.Numeral) {
				results.Errors = append(results.Errors,
					fmt.Sprintf("%s: invalid major arcana numeral: %q", ref, s.Numeral))
			}
			if s.Suit != "" {
				results.Errors = append(results.Errors,
					fmt.Sprintf("%s: major arcana records must not carry a suit", ref))
			}
		case star.Minor:
			if !star.ValidSuit(s.Suit) {
				results.Errors = append(results.Errors,
					fmt.Sprintf("%s: invalid minor arcana suit: %q (expected one of %s)",
						ref, s.Suit, strings.Join(star.Suits, ", ")))
			}
			if s.Numeral != "" {
				results.Errors = append(results.Errors,
					fmt.Sprintf("%s: minor arcana records must not carry a numeral", ref))
			}
		default:
			results.Errors = append(results.Errors,
				fmt.Sprintf("%s: arcana must be %q or %q, got %q", ref, star.Major, star.Minor, s.Arcana))
		}

		if s.Name != "" {
			key := strings.ToLower(s.Name)
			if prev, dup := seenNames[key]; dup {
				results.Errors = append(results.Errors,
					fmt.Sprintf("duplicate star name: %s (already used by %s)", s.Name, prev))
			}
			seenNames[key] = s.Name
		}

		if s.Card != "" {
			key := strings.ToLower(s.Card)
			if prev, dup := seenCards[key]; dup {
				results.Errors = append(results.Errors,
					fmt.Sprintf("duplicate card assignment: %s given to both %s and %s", s.Card, prev, ref))
			}
			seenCards[key] = ref
		}

		for _, hex := range []string{s.Color, s.Highlight} {
			if hex == "" {
				continue
			}
			if _, err := colorful.Hex(hex); err != nil {
				results.Errors = append(results.Errors,
					fmt.Sprintf("%s: invalid color %q: %v", ref, hex, err))
			}
		}

		if s.IsSol() {
			foundSol = true
		}
	}

	if len(c.Stars) == 0 {
		results.Errors = append(results.Errors, "catalog has no star records")
	}

	if !foundSol {
		results.Warnings = append(results.Warnings,
			"no Sol reference record found (a record with distance_ly = 0)")
	}

	return results
}
