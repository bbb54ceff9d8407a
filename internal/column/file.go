package column

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/goscol/internal/s16"
)

// ValidationError represents a column definition validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Validate checks if the column definition supports a resistance
// calculation.
func (sc *SteelColumn) Validate() error {
	if sc.Height <= 0 {
		return &ValidationError{"height must be positive"}
	}
	if sc.Area <= 0 {
		return &ValidationError{"area must be positive"}
	}
	if sc.Ix <= 0 || sc.Iy <= 0 {
		return &ValidationError{"moments of inertia must be positive"}
	}
	if sc.Kx <= 0 || sc.Ky <= 0 {
		return &ValidationError{"effective length factors must be positive"}
	}
	if sc.E <= 0 {
		return &ValidationError{"modulus of elasticity must be positive"}
	}
	if sc.Fy <= 0 {
		return &ValidationError{"fy must be positive"}
	}
	if sc.Phi <= 0 || sc.Phi > 1 {
		return &ValidationError{msg: fmt.Sprintf("phi must be in (0, 1], got %.2f", sc.Phi)}
	}
	return nil
}

// LoadFromFile loads a steel column definition from a JSON file.
// Omitted effective length factors default to 1.0 (pinned both ends)
// and an omitted phi defaults to the Clause 13.1 value; everything
// else is validated as given.
func LoadFromFile(filepath string) (*SteelColumn, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var col SteelColumn
	if err := json.Unmarshal(data, &col); err != nil {
		return nil, err
	}

	if col.Kx == 0 {
		col.Kx = 1.0
	}
	if col.Ky == 0 {
		col.Ky = 1.0
	}
	if col.Phi == 0 {
		col.Phi = s16.Phi
	}

	if err := col.Validate(); err != nil {
		return nil, err
	}

	return &col, nil
}
