package nbcc

// Load represents an unfactored scalar action separated by load origin.
// The scalar can be a force, a moment or a line load; the combination
// arithmetic is the same. Components may be zero or negative (wind
// uplift, for example).
type Load struct {
	D float64 `json:"d"` // Dead load
	L float64 `json:"l"` // Live load
	S float64 `json:"s"` // Snow load
	W float64 `json:"w"` // Wind load
	E float64 `json:"e"` // Earthquake load
}

// Combination represents an NBCC strength-design load combination.
// Based on NBCC 2015 Table 4.1.3.2-A
type Combination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead float64
	Live float64
	Snow float64
}

// GravityCombinations are the principal gravity load cases of NBCC 2015
// Table 4.1.3.2-A. Wind and earthquake components are carried on Load
// for completeness but no combination in this set factors them; W and E
// never contribute to the factored result. Extending the set means
// adding the companion-load rules, not just more rows here.
var GravityCombinations = []Combination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.25D + 1.5L",
		Dead:        1.25,
		Live:        1.5,
	},
	{
		ID:          "3",
		Description: "1.25D + 1.5L + 1.0S",
		Dead:        1.25,
		Live:        1.5,
		Snow:        1.0,
	},
	{
		ID:          "4",
		Description: "1.25D + 1.5S + 1.0L",
		Dead:        1.25,
		Live:        1.0,
		Snow:        1.5,
	},
}

// Factored calculates the factored load for this combination.
func (c Combination) Factored(ld Load) float64 {
	return c.Dead*ld.D + c.Live*ld.L + c.Snow*ld.S
}

// Governing finds the largest factored load across the gravity
// combinations and the combination that produces it. The search is
// seeded from the first combination, not from zero, so a load with
// all-negative components still resolves to the least negative
// combination instead of a spurious zero. Ties keep the earliest
// combination in the set.
func Governing(ld Load) (float64, Combination) {
	governing := GravityCombinations[0]
	maxLoad := governing.Factored(ld)

	for _, combo := range GravityCombinations[1:] {
		if f := combo.Factored(ld); f > maxLoad {
			maxLoad = f
			governing = combo
		}
	}

	return maxLoad, governing
}

// MaxFactoredLoad returns the largest factored load across the gravity
// combinations.
func MaxFactoredLoad(ld Load) float64 {
	maxLoad, _ := Governing(ld)
	return maxLoad
}
