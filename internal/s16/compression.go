package s16

import "math"

// CSA S16:19 Constants for Compression Members

const (
	// Resistance factor for structural steel
	// Clause 13.1
	Phi = 0.90

	// Shape parameter n for the Clause 13.3.1 compressive resistance
	// formula. The value depends on how the section was fabricated.
	NHotRolled   = 1.34 // hot-rolled, fabricated structural sections and HSS
	NWeldedPlate = 2.24 // welded three-plate members with flame-cut flange edges
)

// RadiusOfGyration calculates the radius of gyration of a section
// about one axis:
//
//	r = √(I / A)
//
// A zero area follows IEEE-754 division and produces +Inf (or NaN when
// I is also zero).
func RadiusOfGyration(i, area float64) float64 {
	return math.Sqrt(i / area)
}

// EulerBucklingLoad calculates the Euler elastic buckling load of a
// pin-ended equivalent compression member about one axis:
//
//	P_E = π²·E·I / (k·L²)
//
// The effective length factor k scales the squared length term once,
// consistent with the slenderness form used throughout the resistance
// calculation. A zero k or L produces Inf or NaN rather than an error.
func EulerBucklingLoad(e, i, k, l float64) float64 {
	return math.Pi * math.Pi * e * i / (k * l * l)
}

// CompressionResult holds the factored axial compressive resistance of
// a doubly-symmetric compression member per Clause 13.3.1, together
// with every intermediate of the calculation. Units follow the inputs;
// the calculation only requires that they be internally consistent.
type CompressionResult struct {
	// Elastic buckling about the x-x (major) axis
	PEx float64 // Euler buckling load
	FEx float64 // elastic buckling stress, P_Ex / A

	// Elastic buckling about the y-y (minor) axis
	PEy float64
	FEy float64

	// Governing values
	Fe           float64 // governing elastic buckling stress, min(F_ex, F_ey)
	MinorGoverns bool    // true when the y-y axis controls
	Lambda       float64 // non-dimensional slenderness, √(fy / F_e)
	Pr           float64 // factored compressive resistance
}

// GoverningAxis returns the axis label of the governing buckling mode,
// "y-y" when the minor axis controls and "x-x" otherwise.
func (r CompressionResult) GoverningAxis() string {
	if r.MinorGoverns {
		return "y-y"
	}
	return "x-x"
}

// Compression calculates the factored axial compressive resistance of
// a doubly-symmetric section per Clause 13.3.1:
//
//	F_e = min(P_Ex/A, P_Ey/A)
//	λ   = √(fy / F_e)
//	P_r = φ·A·fy·(1 + λ^(2n))^(-1/n)
//
// n is the shape parameter for the fabrication method (NHotRolled or
// NWeldedPlate); the value is applied as given without validation so
// that other editions or products can be checked. Inputs are likewise
// not validated: a zero area or length propagates through as IEEE
// Inf/NaN in the result. Callers that need guarded inputs should
// validate before calling.
func Compression(area, ix, iy, kx, ky, l, e, fy, n, phi float64) CompressionResult {
	var r CompressionResult

	r.PEx = EulerBucklingLoad(e, ix, kx, l)
	r.FEx = r.PEx / area
	r.PEy = EulerBucklingLoad(e, iy, ky, l)
	r.FEy = r.PEy / area

	r.Fe = math.Min(r.FEx, r.FEy)
	r.MinorGoverns = r.FEy < r.FEx

	r.Lambda = math.Sqrt(fy / r.Fe)
	r.Pr = phi * area * fy * math.Pow(1+math.Pow(r.Lambda, 2*n), -1/n)

	return r
}

// FactoredAxialCapacity calculates only the factored compressive
// resistance P_r. It is a shorthand for Compression(...).Pr used by the
// height-sweep code where the intermediates are not reported.
func FactoredAxialCapacity(area, ix, iy, kx, ky, l, e, fy, n, phi float64) float64 {
	return Compression(area, ix, iy, kx, ky, l, e, fy, n, phi).Pr
}
