package chart

import (
	"math"
	"sort"

	"github.com/arcanaland/cygni-arcana/internal/star"
)

// SolDistanceGC is Sol's distance from the Galactic Center in light-years,
// the pivot between the "closer than Sol" and "further than Sol" rank groups.
const SolDistanceGC = 26000

// PlacedStar is a star record with its chart coordinates
type PlacedStar struct {
	star.Star
	X float64
	Y float64
}

// PerpendicularOffset converts galactic polar coordinates relative to Sol
// into the signed perpendicular distance from the GC-Sol-GAC line.
// Longitude 0 points from Sol towards the GC.
func PerpendicularOffset(distanceLY, longitudeDeg float64) float64 {
	return distanceLY * math.Sin(longitudeDeg*math.Pi/180)
}

// Lane bins a perpendicular offset into a discrete chart column.
// Positive offsets lead the Sun's clockwise galactic rotation and are
// plotted on the left (negative X); trailing stars go right.
func Lane(offset float64) float64 {
	abs := math.Abs(offset)
	sign := 1.0
	if offset >= 0 {
		sign = -1.0
	}

	switch {
	case abs < 1:
		return 0 // essentially on the GC-Sol-GAC line
	case abs < 12:
		return sign * 0.5
	case abs < 70:
		return sign * 1
	default:
		return sign * 2
	}
}

// Project computes chart coordinates for every star, preserving catalog
// order. X is the ahead/behind lane; Y is the ordinal rank by distance
// from the Galactic Center, with the GC marker pinned at the top and Sol
// at the middle reference line. Distance ties keep catalog order.
func Project(stars []star.Star) []PlacedStar {
	sorted := make([]star.Star, len(stars))
	copy(sorted, stars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DistanceGC < sorted[j].DistanceGC
	})

	// Split the ranking around Sol; the two reference points are pinned.
	var closer, further []string
	for _, s := range sorted {
		switch {
		case s.IsGalacticCenter() || s.IsSol():
		case s.DistanceGC < SolDistanceGC:
			closer = append(closer, s.Name)
		default:
			further = append(further, s.Name)
		}
	}

	rank := make(map[string]float64, len(stars))
	for idx, name := range closer {
		// Stars closest to the GC get the highest positions.
		if len(closer) == 1 {
			rank[name] = 0.35
			continue
		}
		reversed := float64(len(closer) - 1 - idx)
		rank[name] = 0.1 + reversed/float64(len(closer)-1)*0.47
	}
	for idx, name := range further {
		if len(further) == 1 {
			rank[name] = -0.35
			continue
		}
		rank[name] = -0.1 - float64(idx)/float64(len(further)-1)*0.47
	}

	placed := make([]PlacedStar, 0, len(stars))
	for _, s := range stars {
		y := rank[s.Name]
		if s.IsGalacticCenter() {
			y = 0.7
		} else if s.IsSol() {
			y = 0
		}

		placed = append(placed, PlacedStar{
			Star: s,
			X:    Lane(PerpendicularOffset(s.DistanceLY, s.LongitudeDeg)),
			Y:    y,
		})
	}
	return placed
}
