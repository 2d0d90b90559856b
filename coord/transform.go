package coord

import "github.com/arloliu/spz/errs"

// Transform is a per-axis sign flip (a diagonal ±1 matrix) that maps
// values expressed in one named System into another. It is the only
// shape a conversion between two of the eight systems can take, so the
// zero value is never meaningful on its own; construct one with
// NewTransform.
type Transform struct {
	SX, SY, SZ float32
}

// NewTransform derives the sign-flip transform that converts values from
// the "from" system into the "to" system. Converting A to B and back to
// A with the composed transform reproduces the input exactly, since every
// component here is ±1 and squares to 1.
//
// Unspecified on either side means "do not transform": it always yields
// the identity transform rather than an error, since a caller that never
// named a coordinate system has nothing for this package to convert.
func NewTransform(from, to System) (Transform, error) {
	if from == Unspecified || to == Unspecified {
		return Transform{SX: 1, SY: 1, SZ: 1}, nil
	}

	fx, fy, fz, err := from.signs()
	if err != nil {
		return Transform{}, err
	}

	tx, ty, tz, err := to.signs()
	if err != nil {
		return Transform{}, err
	}

	return Transform{SX: fx * tx, SY: fy * ty, SZ: fz * tz}, nil
}

// IsIdentity reports whether the transform leaves every axis unchanged.
func (t Transform) IsIdentity() bool {
	return t.SX == 1 && t.SY == 1 && t.SZ == 1
}

// det returns the determinant of the diagonal sign matrix: +1 when an
// even number of axes flip, -1 when an odd number do.
func (t Transform) det() float32 {
	return t.SX * t.SY * t.SZ
}

// ApplyPositions rewrites a flattened [x0,y0,z0,x1,...] slice in place,
// flipping each axis independently.
func (t Transform) ApplyPositions(positions []float32) {
	for i := 0; i+2 < len(positions); i += 3 {
		positions[i] *= t.SX
		positions[i+1] *= t.SY
		positions[i+2] *= t.SZ
	}
}

// ApplyRotations rewrites a flattened [x0,y0,z0,w0,x1,...] quaternion
// slice in place. Conjugating a rotation by a diagonal sign matrix D
// (R' = D R D) keeps R' a proper rotation regardless of det(D); in
// quaternion form that conjugation is q' = (det*sx*x, det*sy*y,
// det*sz*z, w).
func (t Transform) ApplyRotations(quats []float32) {
	det := t.det()
	for i := 0; i+3 < len(quats); i += 4 {
		quats[i] *= det * t.SX
		quats[i+1] *= det * t.SY
		quats[i+2] *= det * t.SZ
	}
}

// ApplySH rewrites a flattened spherical-harmonic coefficient slice
// (SHCoeffCount(degree) coefficients per point, each with 3 interleaved
// RGB channels) in place, negating each coefficient's three channels
// according to the real-SH parity of that coefficient under the axis
// sign flip.
func (t Transform) ApplySH(coeffs []float32, degree uint8) error {
	parity, err := shParity(degree, t.SX, t.SY, t.SZ)
	if err != nil {
		return err
	}

	k := len(parity)
	if k == 0 {
		return nil
	}

	for i := range coeffs {
		coeffIdx := (i / 3) % k
		coeffs[i] *= parity[coeffIdx]
	}

	return nil
}

// shParity returns, for each real-SH coefficient up to and including the
// given degree (in the same band-1/band-2/band-3 ordering the encoding
// package packs them in: band 1 is [y, z, x]; band 2 is [xy, yz,
// 2z2-x2-y2, xz, x2-y2]; band 3 is [y(3x2-y2), xyz, y(4z2-x2-y2),
// z(2z2-3x2-3y2), x(4z2-x2-y2), z(x2-y2), x(x2-3y2)]), the sign that
// coefficient picks up under the axis sign flip (sx, sy, sz). Degree 0
// (the DC term, handled separately by the color channel) carries no SH
// coefficients at all.
func shParity(degree uint8, sx, sy, sz float32) ([]float32, error) {
	if degree > 3 {
		return nil, errs.ErrInvalidHeaderField
	}

	band1 := []float32{sy, sz, sx}
	band2 := []float32{sx * sy, sy * sz, 1, sx * sz, 1}
	band3 := []float32{sy, sx * sy * sz, sy, sz, sx, sz, sx}

	var out []float32
	if degree >= 1 {
		out = append(out, band1...)
	}
	if degree >= 2 {
		out = append(out, band2...)
	}
	if degree >= 3 {
		out = append(out, band3...)
	}

	return out, nil
}
