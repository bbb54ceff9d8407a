package column

import (
	"github.com/alexiusacademia/goscol/internal/nbcc"
	"github.com/alexiusacademia/goscol/internal/s16"
)

// SteelColumn represents a physical steel column carrying an axial
// load. The section is assumed doubly-symmetric. It extends the plain
// Column geometry with the demand side (the unfactored axial loads at
// the column top) and the resistance side (yield stress and resistance
// factor).
type SteelColumn struct {
	Column

	Tag   string    `json:"tag"`   // identifier on the framing plan
	Fy    float64   `json:"fy"`    // steel yield stress
	Loads nbcc.Load `json:"loads"` // unfactored axial loads at the column top
	Phi   float64   `json:"phi"`   // steel resistance factor, Clause 13.1
}

// NewSteelColumn creates a steel column with the Clause 13.1 default
// resistance factor φ = 0.90.
func NewSteelColumn(tag string, geometry Column, fy float64, loads nbcc.Load) *SteelColumn {
	return &SteelColumn{
		Column: geometry,
		Tag:    tag,
		Fy:     fy,
		Loads:  loads,
		Phi:    s16.Phi,
	}
}

// FactoredAxialLoad calculates the governing factored axial load from
// the NBCC gravity combinations. Wind and earthquake components on the
// load are not factored by any combination in that set.
func (sc SteelColumn) FactoredAxialLoad() float64 {
	return nbcc.MaxFactoredLoad(sc.Loads)
}

// Compression runs the Clause 13.3.1 resistance calculation for this
// column and returns every intermediate. n is the shape parameter for
// the fabrication method, s16.NHotRolled or s16.NWeldedPlate.
func (sc SteelColumn) Compression(n float64) s16.CompressionResult {
	return s16.Compression(sc.Area, sc.Ix, sc.Iy, sc.Kx, sc.Ky, sc.Height, sc.E, sc.Fy, n, sc.Phi)
}

// FactoredAxialCapacity calculates the factored axial compressive
// resistance of the column about the governing axis.
func (sc SteelColumn) FactoredAxialCapacity(n float64) float64 {
	return sc.Compression(n).Pr
}

// FactoredDCR calculates the factored demand over capacity ratio. A
// value above 1.0 means the column is overstressed.
func (sc SteelColumn) FactoredDCR(n float64) float64 {
	return sc.FactoredAxialLoad() / sc.FactoredAxialCapacity(n)
}
