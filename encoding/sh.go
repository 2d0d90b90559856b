package encoding

import (
	"math"

	"github.com/arloliu/spz/errs"
)

// SHCoeffCount returns the number of per-point spherical-harmonic
// coefficients (one per real-SH basis function, not multiplied by the
// RGB channel count) for the given degree: 0, 3, 8, or 15.
func SHCoeffCount(degree uint8) int {
	switch degree {
	case 0:
		return 0
	case 1:
		return 3
	case 2:
		return 8
	case 3:
		return 15
	default:
		return 0
	}
}

// shBand1Coeffs is the count of degree-1 coefficients, which are
// quantized with step 8 (resolution 1/8) instead of the step 16
// (resolution 1/16) used for degree 2 and 3.
const shBand1Coeffs = 3

func shStep(coeffIndex int) float64 {
	if coeffIndex < shBand1Coeffs {
		return 8
	}

	return 16
}

// EncodeSH packs spherical-harmonic coefficients, laid out per point as
// k coefficients each with 3 interleaved RGB channels (k from
// SHCoeffCount(degree)): byte = round(c*step) + 128, clamped to [0,255].
func EncodeSH(coeffs []float32, degree uint8) ([]byte, int) {
	out := make([]byte, len(coeffs))
	saturated := 0
	k := SHCoeffCount(degree)

	for i, c := range coeffs {
		coeffIndex := (i / 3) % max(k, 1)
		step := shStep(coeffIndex)

		raw := math.RoundToEven(float64(c)*step + 128)
		b, clamped := clampToByte(raw)
		if clamped {
			saturated++
		}
		out[i] = b
	}

	return out, saturated
}

// DecodeSH unpacks spherical-harmonic coefficients: c = (byte-128)/step.
func DecodeSH(data []byte, numPoints int, degree uint8) ([]float32, error) {
	k := SHCoeffCount(degree)
	expected := numPoints * k * 3
	if len(data) != expected {
		return nil, errs.ErrLengthMismatch
	}

	out := make([]float32, len(data))
	for i, b := range data {
		coeffIndex := (i / 3) % max(k, 1)
		step := shStep(coeffIndex)
		out[i] = float32((float64(b) - 128) / step)
	}

	return out, nil
}
