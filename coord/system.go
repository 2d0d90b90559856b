// Package coord implements the coordinate-system transform engine: the
// eight named axis conventions a splat's positions, rotations, and
// spherical-harmonic coefficients can be expressed in, and the sign-flip
// algebra used to convert between any pair of them.
package coord

import "github.com/arloliu/spz/errs"

// System names an axis convention as three letters: the first picks the
// x-axis direction (L left, R right), the second the y-axis (D down, U
// up), the third the z-axis (B back, F front), each relative to a common
// right-up-back reference frame.
type System uint8

const (
	Unspecified System = iota
	LDB
	RDB
	LUB
	RUB
	LDF
	RDF
	LUF
	RUF
)

// String returns the three-letter name, or "unspecified".
func (s System) String() string {
	switch s {
	case LDB:
		return "LDB"
	case RDB:
		return "RDB"
	case LUB:
		return "LUB"
	case RUB:
		return "RUB"
	case LDF:
		return "LDF"
	case RDF:
		return "RDF"
	case LUF:
		return "LUF"
	case RUF:
		return "RUF"
	default:
		return "unspecified"
	}
}

// signs returns the (sx, sy, sz) of this system relative to the RUB
// (right, up, back) reference: +1 for R/U/B, -1 for L/D/F.
func (s System) signs() (sx, sy, sz float32, err error) {
	switch s {
	case LDB:
		return -1, -1, 1, nil
	case RDB:
		return 1, -1, 1, nil
	case LUB:
		return -1, 1, 1, nil
	case RUB:
		return 1, 1, 1, nil
	case LDF:
		return -1, -1, -1, nil
	case RDF:
		return 1, -1, -1, nil
	case LUF:
		return -1, 1, -1, nil
	case RUF:
		return 1, 1, -1, nil
	default:
		return 0, 0, 0, errs.ErrUnknownCoordinateSystem
	}
}

// Valid reports whether s is one of the eight named systems.
func (s System) Valid() bool {
	return s >= LDB && s <= RUF
}
