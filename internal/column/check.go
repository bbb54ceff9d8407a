package column

import (
	"fmt"

	"github.com/alexiusacademia/goscol/internal/nbcc"
	"github.com/alexiusacademia/goscol/internal/s16"
)

// CheckResult holds the results of a column compression check
type CheckResult struct {
	// Slenderness properties
	Rx float64 // radius of gyration, x-x axis
	Ry float64 // radius of gyration, y-y axis

	// Resistance, Clause 13.3.1
	Resistance s16.CompressionResult
	N          float64 // shape parameter used

	// Demand, NBCC gravity combinations
	Cf        float64 // governing factored axial load
	Governing nbcc.Combination

	// Status
	DCR        float64 // Cf / Pr
	IsAdequate bool
	Message    string
}

// Check runs the complete compression check for the column: section
// properties, factored resistance with every intermediate, governing
// factored demand and the demand over capacity ratio. Unlike the raw
// resistance methods, Check validates its inputs and fails loudly on
// geometry the formulas would silently turn into Inf or NaN.
func (sc SteelColumn) Check(n float64) (*CheckResult, error) {
	if sc.Height <= 0 || sc.Area <= 0 {
		return nil, fmt.Errorf("invalid column dimensions: height=%.2f, area=%.2f", sc.Height, sc.Area)
	}
	if sc.Ix <= 0 || sc.Iy <= 0 {
		return nil, fmt.Errorf("invalid moments of inertia: Ix=%.2f, Iy=%.2f", sc.Ix, sc.Iy)
	}
	if sc.Kx <= 0 || sc.Ky <= 0 {
		return nil, fmt.Errorf("invalid effective length factors: kx=%.2f, ky=%.2f", sc.Kx, sc.Ky)
	}
	if sc.E <= 0 || sc.Fy <= 0 {
		return nil, fmt.Errorf("invalid material properties: E=%.2f, fy=%.2f", sc.E, sc.Fy)
	}
	if sc.Phi <= 0 || sc.Phi > 1 {
		return nil, fmt.Errorf("invalid resistance factor: phi=%.2f", sc.Phi)
	}
	if n <= 0 {
		return nil, fmt.Errorf("invalid shape parameter: n=%.2f", n)
	}

	result := &CheckResult{N: n}

	result.Rx = s16.RadiusOfGyration(sc.Ix, sc.Area)
	result.Ry = s16.RadiusOfGyration(sc.Iy, sc.Area)
	result.Resistance = sc.Compression(n)
	result.Cf, result.Governing = nbcc.Governing(sc.Loads)
	result.DCR = result.Cf / result.Resistance.Pr

	result.IsAdequate = result.DCR <= 1.0
	if result.IsAdequate {
		result.Message = fmt.Sprintf("Column is adequate (DCR = %.3f)", result.DCR)
	} else {
		result.Message = fmt.Sprintf("Column is overstressed (DCR = %.3f) - increase the section or reduce the effective length", result.DCR)
	}

	return result, nil
}
