package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goscol/internal/nbcc"
	"github.com/alexiusacademia/goscol/internal/s16"
)

// sc01 is a W310x97-scale column carrying a typical interior gravity
// load, used as the main regression column throughout the package.
func sc01() *SteelColumn {
	return NewSteelColumn("SC01",
		Column{Height: 3250, Area: 16500, Ix: 308e6, Iy: 100e6, Kx: 1, Ky: 1, E: 200e3},
		345,
		nbcc.Load{D: 820000, L: 1045100},
	)
}

func TestNewSteelColumnDefaults(t *testing.T) {
	sc := sc01()
	assert.Equal(t, "SC01", sc.Tag)
	assert.Equal(t, s16.Phi, sc.Phi)
	assert.Equal(t, 3250.0, sc.Height) // promoted through the embedded Column
}

func TestFactoredAxialCapacityFixtures(t *testing.T) {
	tests := []struct {
		name string
		col  *SteelColumn
		n    float64
		want float64
	}{
		{
			name: "interior gravity column",
			col:  sc01(),
			n:    s16.NHotRolled,
			want: 4465e3,
		},
		{
			name: "imperial shape with sway about x-x",
			col: NewSteelColumn("SC02",
				Column{Height: 160, Area: 42.78, Ix: 1710.59, Iy: 679.91, Kx: 2.0, Ky: 1.0, E: 29007.548},
				50.038, nbcc.Load{}),
			n:    s16.NHotRolled,
			want: 1698.175,
		},
		{
			name: "heavy W-shape",
			col: NewSteelColumn("SC03",
				Column{Height: 4000, Area: 47700, Ix: 1130e6, Iy: 344e6, Kx: 1, Ky: 1, E: 200e3},
				345, nbcc.Load{}),
			n:    s16.NHotRolled,
			want: 12300e3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.want, tt.col.FactoredAxialCapacity(tt.n), 1e-3)
		})
	}
}

func TestFactoredAxialLoad(t *testing.T) {
	// 1.25D + 1.5L governs for a live-dominated load.
	assert.InDelta(t, 2592650.0, sc01().FactoredAxialLoad(), 1e-9)
}

func TestFactoredDCR(t *testing.T) {
	assert.InEpsilon(t, 0.58101620, sc01().FactoredDCR(s16.NHotRolled), 1e-6)
}

func TestCompressionMatchesScalarCapacity(t *testing.T) {
	sc := sc01()
	r := sc.Compression(s16.NHotRolled)
	assert.Equal(t, r.Pr, sc.FactoredAxialCapacity(s16.NHotRolled))
	assert.True(t, r.MinorGoverns) // Iy well below Ix with equal k
}

func TestCheck(t *testing.T) {
	sc := sc01()
	result, err := sc.Check(s16.NHotRolled)
	require.NoError(t, err)

	assert.Equal(t, s16.RadiusOfGyration(sc.Ix, sc.Area), result.Rx)
	assert.Equal(t, s16.RadiusOfGyration(sc.Iy, sc.Area), result.Ry)
	assert.Equal(t, sc.Compression(s16.NHotRolled), result.Resistance)

	assert.InDelta(t, 2592650.0, result.Cf, 1e-9)
	assert.Equal(t, "2", result.Governing.ID)

	assert.InEpsilon(t, 0.58101620, result.DCR, 1e-6)
	assert.True(t, result.IsAdequate)
	assert.Contains(t, result.Message, "adequate")
}

func TestCheckOverstressed(t *testing.T) {
	sc := sc01()
	sc.Loads = nbcc.Load{D: 4e6, L: 3e6}

	result, err := sc.Check(s16.NHotRolled)
	require.NoError(t, err)
	assert.Greater(t, result.DCR, 1.0)
	assert.False(t, result.IsAdequate)
	assert.Contains(t, result.Message, "overstressed")
}

func TestCheckValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SteelColumn)
		n      float64
	}{
		{"zero height", func(sc *SteelColumn) { sc.Height = 0 }, s16.NHotRolled},
		{"zero area", func(sc *SteelColumn) { sc.Area = 0 }, s16.NHotRolled},
		{"negative Ix", func(sc *SteelColumn) { sc.Ix = -1 }, s16.NHotRolled},
		{"zero ky", func(sc *SteelColumn) { sc.Ky = 0 }, s16.NHotRolled},
		{"zero E", func(sc *SteelColumn) { sc.E = 0 }, s16.NHotRolled},
		{"zero fy", func(sc *SteelColumn) { sc.Fy = 0 }, s16.NHotRolled},
		{"phi above one", func(sc *SteelColumn) { sc.Phi = 1.2 }, s16.NHotRolled},
		{"zero n", func(sc *SteelColumn) {}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := sc01()
			tt.mutate(sc)
			result, err := sc.Check(tt.n)
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}
