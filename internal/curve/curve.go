package curve

import (
	"math"

	"github.com/alexiusacademia/goscol/internal/s16"
)

// Section holds the inputs that stay fixed while a resistance sweep
// varies the column height: the cross-section and its material.
type Section struct {
	Area float64 `json:"area"` // cross-sectional area
	Ix   float64 `json:"ix"`   // moment of inertia, x-x axis
	Iy   float64 `json:"iy"`   // moment of inertia, y-y axis
	E    float64 `json:"e"`    // modulus of elasticity
	Fy   float64 `json:"fy"`   // steel yield stress
}

// Curve is one section's resistance line over a height range. Heights
// and Resistances are parallel slices, ascending in height.
type Curve struct {
	Label       string
	Heights     []float64
	Resistances []float64
}

// Heights generates the evaluation heights for a sweep: an arithmetic
// progression from min (inclusive) to max (exclusive) stepping by
// interval, ceil((max-min)/interval) points in total. Each point is
// computed from the start by index rather than by accumulating the
// step, so a fractional interval cannot drift a point past max. A
// non-positive interval or an empty range yields no points.
func Heights(min, max, interval float64) []float64 {
	if interval <= 0 || max <= min {
		return nil
	}

	n := int(math.Ceil((max - min) / interval))
	heights := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		h := min + float64(i)*interval
		if h >= max {
			break
		}
		heights = append(heights, h)
	}
	return heights
}

// Sweep evaluates the factored axial compressive resistance of a
// section at every height in [min, max) stepping by interval. Each
// point is computed independently from the section; nothing is
// mutated between points.
//
// The sweep fixes the parameters that a quick section comparison
// takes for granted:
//   - pinned at both ends, kx = ky = 1
//   - hot-rolled shape, n = 1.34
//   - φ = 0.90
func Sweep(min, max, interval float64, label string, s Section) Curve {
	heights := Heights(min, max, interval)
	resistances := make([]float64, len(heights))
	for i, h := range heights {
		resistances[i] = s16.FactoredAxialCapacity(s.Area, s.Ix, s.Iy, 1, 1, h, s.E, s.Fy, s16.NHotRolled, s16.Phi)
	}
	return Curve{Label: label, Heights: heights, Resistances: resistances}
}

// Comparison pairs the resistance curves of two candidate sections
// evaluated over the same height range.
type Comparison struct {
	A Curve
	B Curve
}

// CompareTwoColumns sweeps sections A and B over the same height
// range. The sweeps share no state, so neither column's result can
// depend on the other or on run order.
func CompareTwoColumns(min, max, interval float64, a, b Section) Comparison {
	return Comparison{
		A: Sweep(min, max, interval, "Column A", a),
		B: Sweep(min, max, interval, "Column B", b),
	}
}
