package column

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/goscol/internal/s16"
)

// Axis identifies a principal axis of a doubly-symmetric section.
type Axis int

const (
	MajorAxis Axis = iota // x-x, buckling about the strong axis
	MinorAxis             // y-y, buckling about the weak axis
)

// ErrInvalidAxis reports an axis outside {MajorAxis, MinorAxis}.
var ErrInvalidAxis = errors.New("axis must be x or y")

func (a Axis) String() string {
	switch a {
	case MajorAxis:
		return "x"
	case MinorAxis:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis converts an axis label to an Axis. Accepted labels are "x"
// and "y", case-insensitive. Anything else wraps ErrInvalidAxis.
func ParseAxis(label string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "x":
		return MajorAxis, nil
	case "y":
		return MinorAxis, nil
	}
	return 0, fmt.Errorf("%w: got %q", ErrInvalidAxis, label)
}

// Column represents a theoretical doubly-symmetric column of a mostly
// homogeneous material. No unit system is imposed; the properties only
// have to be internally consistent (all SI-mm, or all imperial, and so
// on), and the results come out in the same system.
type Column struct {
	// Geometry
	Height float64 `json:"height"` // unsupported length
	Area   float64 `json:"area"`   // cross-sectional area
	Ix     float64 `json:"ix"`     // moment of inertia about the x-x axis
	Iy     float64 `json:"iy"`     // moment of inertia about the y-y axis

	// Effective length factors per axis
	Kx float64 `json:"kx"`
	Ky float64 `json:"ky"`

	// Material
	E float64 `json:"e"` // modulus of elasticity
}

// RadiusOfGyration calculates √(I/A) about the given axis. Degenerate
// geometry (zero area) is not guarded and follows IEEE-754 division.
func (c Column) RadiusOfGyration(axis Axis) (float64, error) {
	switch axis {
	case MajorAxis:
		return s16.RadiusOfGyration(c.Ix, c.Area), nil
	case MinorAxis:
		return s16.RadiusOfGyration(c.Iy, c.Area), nil
	}
	return 0, fmt.Errorf("%w: got %v", ErrInvalidAxis, axis)
}

// EulerBucklingLoad calculates the Euler elastic buckling load about
// the given axis using the axis' own effective length factor. A zero
// height is not guarded and produces +Inf.
func (c Column) EulerBucklingLoad(axis Axis) (float64, error) {
	switch axis {
	case MajorAxis:
		return s16.EulerBucklingLoad(c.E, c.Ix, c.Kx, c.Height), nil
	case MinorAxis:
		return s16.EulerBucklingLoad(c.E, c.Iy, c.Ky, c.Height), nil
	}
	return 0, fmt.Errorf("%w: got %v", ErrInvalidAxis, axis)
}
