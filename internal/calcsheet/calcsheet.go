package calcsheet

import (
	"fmt"
	"strconv"

	"github.com/alexiusacademia/goscol/internal/s16"
)

// Step is one line of a hand-style calculation: the symbol being
// computed, its governing expression, the expression again with the
// numeric values substituted in, and the result. Rendering a step as
//
//	symbol = expression
//	       = substitution
//	       = value
//
// reads the way a checker expects a calculation sheet to read.
type Step struct {
	Symbol       string
	Expression   string
	Substitution string
	Value        float64
}

// Block is a titled group of steps, e.g. the Euler buckling derivation
// for one axis.
type Block struct {
	Title string
	Steps []Step
}

// Derivation is an ordered calculation sheet: blocks render in the
// order they were assembled.
type Derivation []Block

// FormatNumber renders a value for a calculation sheet: six
// significant figures, exponent form only when the magnitude calls
// for it.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// EulerBuckling builds the derivation block for the Euler elastic
// buckling load about one axis. axis is the subscript label, "x" or
// "y".
func EulerBuckling(axis string, e, i, k, l float64) Block {
	pe := s16.EulerBucklingLoad(e, i, k, l)
	return Block{
		Title: fmt.Sprintf("Euler buckling load, %s-%s axis", axis, axis),
		Steps: []Step{
			{
				Symbol:       "P_E" + axis,
				Expression:   fmt.Sprintf("π²·E·I%s / (k%s·L²)", axis, axis),
				Substitution: fmt.Sprintf("π² · %s · %s / (%s · %s²)", FormatNumber(e), FormatNumber(i), FormatNumber(k), FormatNumber(l)),
				Value:        pe,
			},
		},
	}
}

// FactoredCompression builds the CSA S16:19 Clause 13.3.1 derivation
// block: the full resistance calculation with every intermediate shown
// as its own step, in the order the values chain.
func FactoredCompression(area, ix, iy, kx, ky, l, e, fy, n, phi float64) Block {
	r := s16.Compression(area, ix, iy, kx, ky, l, e, fy, n, phi)

	steps := []Step{
		{
			Symbol:       "P_Ex",
			Expression:   "π²·E·Ix / (kx·L²)",
			Substitution: fmt.Sprintf("π² · %s · %s / (%s · %s²)", FormatNumber(e), FormatNumber(ix), FormatNumber(kx), FormatNumber(l)),
			Value:        r.PEx,
		},
		{
			Symbol:       "F_ex",
			Expression:   "P_Ex / A",
			Substitution: fmt.Sprintf("%s / %s", FormatNumber(r.PEx), FormatNumber(area)),
			Value:        r.FEx,
		},
		{
			Symbol:       "P_Ey",
			Expression:   "π²·E·Iy / (ky·L²)",
			Substitution: fmt.Sprintf("π² · %s · %s / (%s · %s²)", FormatNumber(e), FormatNumber(iy), FormatNumber(ky), FormatNumber(l)),
			Value:        r.PEy,
		},
		{
			Symbol:       "F_ey",
			Expression:   "P_Ey / A",
			Substitution: fmt.Sprintf("%s / %s", FormatNumber(r.PEy), FormatNumber(area)),
			Value:        r.FEy,
		},
		{
			Symbol:       "F_e",
			Expression:   "min(F_ex, F_ey)",
			Substitution: fmt.Sprintf("min(%s, %s)", FormatNumber(r.FEx), FormatNumber(r.FEy)),
			Value:        r.Fe,
		},
		{
			Symbol:       "λ",
			Expression:   "√(fy / F_e)",
			Substitution: fmt.Sprintf("√(%s / %s)", FormatNumber(fy), FormatNumber(r.Fe)),
			Value:        r.Lambda,
		},
		{
			Symbol:       "P_r",
			Expression:   "φ·A·fy·(1 + λ^(2n))^(-1/n)",
			Substitution: fmt.Sprintf("%s · %s · %s · (1 + %s^(2·%s))^(-1/%s)", FormatNumber(phi), FormatNumber(area), FormatNumber(fy), FormatNumber(r.Lambda), FormatNumber(n), FormatNumber(n)),
			Value:        r.Pr,
		},
	}

	return Block{Title: "Factored compressive resistance, Clause 13.3.1", Steps: steps}
}

// PrAtHeight assembles the complete calculation sheet for one column
// at one height: Euler buckling about each axis, then the factored
// compressive resistance. Returns the sheet and the resistance, which
// is the value of the sheet's final step.
func PrAtHeight(area, ix, iy, kx, ky, height, e, fy, n, phi float64) (Derivation, float64) {
	resistance := FactoredCompression(area, ix, iy, kx, ky, height, e, fy, n, phi)

	d := Derivation{
		EulerBuckling("x", e, ix, kx, height),
		EulerBuckling("y", e, iy, ky, height),
		resistance,
	}

	return d, resistance.Steps[len(resistance.Steps)-1].Value
}
