package encoding

import (
	"math"

	"github.com/arloliu/spz/errs"
)

// colorScale and colorBias implement the DC (degree-0) SH term encoding.
// 0.15 is the reference implementation's constant; any bit-exact
// reimplementation must reuse it verbatim.
const (
	colorScale = 0.15 * 255
	colorBias  = 127.5
)

// EncodeColors packs a flattened [r0,g0,b0,r1,...] centered-color slice
// into one byte per channel: byte = round(c*0.15*255 + 127.5).
func EncodeColors(colors []float32) ([]byte, int) {
	out := make([]byte, len(colors))
	saturated := 0

	for i, c := range colors {
		raw := math.RoundToEven(float64(c)*colorScale + colorBias)
		b, clamped := clampToByte(raw)
		if clamped {
			saturated++
		}
		out[i] = b
	}

	return out, saturated
}

// DecodeColors inverts the DC color encoding: c = (byte - 127.5) / (0.15*255).
func DecodeColors(data []byte, numPoints int) ([]float32, error) {
	if len(data) != numPoints*3 {
		return nil, errs.ErrLengthMismatch
	}

	out := make([]float32, len(data))
	for i, b := range data {
		out[i] = float32((float64(b) - colorBias) / colorScale)
	}

	return out, nil
}
