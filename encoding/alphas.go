package encoding

import (
	"math"

	"github.com/arloliu/spz/errs"
)

// alphaGuard keeps logit() finite at the byte=0 and byte=255 extremes,
// half of one byte step out of 255.
const alphaGuard = 1.0 / 510.0

// EncodeAlphas packs one opacity value per point as a quantized sigmoid:
// byte = round(sigmoid(alpha) * 255), clamped to [0,255].
func EncodeAlphas(alphas []float32) ([]byte, int) {
	out := make([]byte, len(alphas))
	saturated := 0

	for i, a := range alphas {
		p := 1.0 / (1.0 + math.Exp(-float64(a)))
		raw := math.RoundToEven(p * 255)
		b, clamped := clampToByte(raw)
		if clamped {
			saturated++
		}
		out[i] = b
	}

	return out, saturated
}

// DecodeAlphas unpacks the quantized sigmoid back into the pre-sigmoid
// (logit) domain, guarding byte=0 and byte=255 so the result is always
// finite.
func DecodeAlphas(data []byte, numPoints int) ([]float32, error) {
	if len(data) != numPoints {
		return nil, errs.ErrLengthMismatch
	}

	out := make([]float32, len(data))
	for i, b := range data {
		p := float64(b) / 255
		if p < alphaGuard {
			p = alphaGuard
		} else if p > 1-alphaGuard {
			p = 1 - alphaGuard
		}

		out[i] = float32(math.Log(p / (1 - p)))
	}

	return out, nil
}
