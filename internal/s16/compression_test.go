package s16

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadiusOfGyration(t *testing.T) {
	tests := []struct {
		name string
		i    float64
		area float64
		want float64
	}{
		{"large concrete-scale section, x-x", 1600e6, 120000, 115.47005383792515},
		{"large concrete-scale section, y-y", 900e6, 120000, 86.60254037844386},
		{"small rolled shape, x-x", 1710.59, 42.78, 6.323427946965752},
		{"small rolled shape, y-y", 679.91, 42.78, 3.986624434349398},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.want, RadiusOfGyration(tt.i, tt.area), 1e-9)
		})
	}
}

func TestRadiusOfGyrationZeroArea(t *testing.T) {
	// Degenerate geometry is not guarded; it follows IEEE-754.
	assert.True(t, math.IsInf(RadiusOfGyration(100, 0), 1))
	assert.True(t, math.IsNaN(RadiusOfGyration(0, 0)))
}

func TestEulerBucklingLoad(t *testing.T) {
	tests := []struct {
		name       string
		e, i, k, l float64
		want       float64
	}{
		{"pinned both ends, x-x", 19.2, 1600e6, 1, 4800, 13159.472534785811},
		{"pinned both ends, y-y", 19.2, 900e6, 1, 4800, 7402.203300817018},
		{"k greater than one, x-x", 50.0, 1710.59, 2.0, 160, 16.487154875448674},
		{"k equal one, y-y", 50.0, 679.91, 1.0, 160, 13.106333453798175},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.want, EulerBucklingLoad(tt.e, tt.i, tt.k, tt.l), 1e-9)
		})
	}
}

func TestEulerBucklingLoadScalesLinearlyWithK(t *testing.T) {
	// The effective length factor divides the load once, not squared:
	// doubling k must exactly halve the buckling load.
	base := EulerBucklingLoad(200e3, 308e6, 1.0, 3250)
	assert.Equal(t, base/2, EulerBucklingLoad(200e3, 308e6, 2.0, 3250))
}

func TestEulerBucklingLoadZeroLength(t *testing.T) {
	assert.True(t, math.IsInf(EulerBucklingLoad(200e3, 308e6, 1, 0), 1))
}

func TestCompressionFixtures(t *testing.T) {
	tests := []struct {
		name                                   string
		area, ix, iy, kx, ky, l, e, fy, n, phi float64
		wantPr                                 float64
	}{
		{
			name: "W310 HSS-scale section, hot rolled",
			area: 16500, ix: 308e6, iy: 100e6, kx: 1, ky: 1, l: 3250,
			e: 200e3, fy: 345, n: NHotRolled, phi: 0.9,
			wantPr: 4465e3,
		},
		{
			name: "imperial-unit shape with mixed k factors",
			area: 42.78, ix: 1710.59, iy: 679.91, kx: 2.0, ky: 1.0, l: 160,
			e: 29007.548, fy: 50.038, n: NHotRolled, phi: 0.9,
			wantPr: 1698.175,
		},
		{
			name: "heavy W-shape, hot rolled",
			area: 47700, ix: 1130e6, iy: 344e6, kx: 1, ky: 1, l: 4000,
			e: 200e3, fy: 345, n: NHotRolled, phi: 0.9,
			wantPr: 12300e3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compression(tt.area, tt.ix, tt.iy, tt.kx, tt.ky, tt.l, tt.e, tt.fy, tt.n, tt.phi)
			assert.InEpsilon(t, tt.wantPr, got.Pr, 1e-3)
			assert.Equal(t, got.Pr, FactoredAxialCapacity(tt.area, tt.ix, tt.iy, tt.kx, tt.ky, tt.l, tt.e, tt.fy, tt.n, tt.phi))
		})
	}
}

func TestCompressionIntermediates(t *testing.T) {
	r := Compression(16500, 308e6, 100e6, 1, 1, 3250, 200e3, 345, NHotRolled, 0.9)

	// Intermediates must chain exactly: each value derives from the
	// previous one with no re-rounding.
	assert.Equal(t, EulerBucklingLoad(200e3, 308e6, 1, 3250), r.PEx)
	assert.Equal(t, r.PEx/16500, r.FEx)
	assert.Equal(t, EulerBucklingLoad(200e3, 100e6, 1, 3250), r.PEy)
	assert.Equal(t, r.PEy/16500, r.FEy)
	assert.Equal(t, math.Min(r.FEx, r.FEy), r.Fe)
	assert.Equal(t, math.Sqrt(345/r.Fe), r.Lambda)

	// Iy < Ix with equal k, so the minor axis governs.
	assert.True(t, r.MinorGoverns)
	assert.Equal(t, "y-y", r.GoverningAxis())
	assert.Equal(t, r.FEy, r.Fe)
}

func TestCompressionGoverningAxisTie(t *testing.T) {
	// Equal buckling stresses resolve to the major axis.
	r := Compression(16500, 100e6, 100e6, 1, 1, 3250, 200e3, 345, NHotRolled, 0.9)
	assert.False(t, r.MinorGoverns)
	assert.Equal(t, "x-x", r.GoverningAxis())
}

func TestCompressionShortColumnApproachesSquashLoad(t *testing.T) {
	// As the length goes to zero the slenderness vanishes and the
	// resistance converges to φ·A·fy.
	r := Compression(16500, 308e6, 100e6, 1, 1, 1e-6, 200e3, 345, NHotRolled, 0.9)
	assert.InEpsilon(t, 0.9*16500*345, r.Pr, 1e-12)
	assert.Less(t, r.Lambda, 1e-9)
}

func TestCompressionDecreasesWithLength(t *testing.T) {
	prev := math.Inf(1)
	for l := 500.0; l <= 20000; l += 500 {
		pr := FactoredAxialCapacity(16500, 308e6, 100e6, 1, 1, l, 200e3, 345, NHotRolled, 0.9)
		assert.Lessf(t, pr, prev, "resistance increased between lengths ending at %g", l)
		prev = pr
	}
}

func TestCompressionShapeParameter(t *testing.T) {
	// The welded three-plate column curve sits above the hot-rolled one
	// for any non-zero slenderness.
	hot := FactoredAxialCapacity(16500, 308e6, 100e6, 1, 1, 3250, 200e3, 345, NHotRolled, 0.9)
	welded := FactoredAxialCapacity(16500, 308e6, 100e6, 1, 1, 3250, 200e3, 345, NWeldedPlate, 0.9)
	assert.Greater(t, welded, hot)
}

func TestCompressionZeroArea(t *testing.T) {
	// Zero area drives the buckling stresses to +Inf, the slenderness
	// to zero, and the resistance to φ·0·fy = 0. No error, no panic.
	r := Compression(0, 308e6, 100e6, 1, 1, 3250, 200e3, 345, NHotRolled, 0.9)
	assert.True(t, math.IsInf(r.FEx, 1))
	assert.Zero(t, r.Pr)
}
