package encoding

import (
	"math"

	"github.com/arloliu/spz/errs"
)

// ScaleBytesPerPoint is the on-disk size of one point's 3-axis scale.
const ScaleBytesPerPoint = 3

// scaleOffset/scaleStep bound the log-scale domain the 1/16-resolution u8
// encoding can represent: byte 0 -> -10, byte 255 -> 5.9375.
const (
	scaleOffset = 10.0
	scaleStep   = 16.0
)

// EncodeScales packs a flattened [sx0,sy0,sz0,sx1,...] log-scale slice
// into one byte per component: round((scale+10)*16) clamped to [0,255].
func EncodeScales(scales []float32) ([]byte, int) {
	out := make([]byte, len(scales))
	saturated := 0

	for i, v := range scales {
		raw := math.RoundToEven((float64(v) + scaleOffset) * scaleStep)
		b, clamped := clampToByte(raw)
		if clamped {
			saturated++
		}
		out[i] = b
	}

	return out, saturated
}

// DecodeScales unpacks the per-component log-scale byte layout: scale =
// byte/16 - 10.
func DecodeScales(data []byte, numPoints int) ([]float32, error) {
	if len(data) != numPoints*ScaleBytesPerPoint {
		return nil, errs.ErrLengthMismatch
	}

	out := make([]float32, len(data))
	for i, b := range data {
		out[i] = float32(float64(b)/scaleStep - scaleOffset)
	}

	return out, nil
}

// clampToByte rounds raw to the nearest byte value, reporting whether
// clamping to [0,255] changed the result.
func clampToByte(raw float64) (byte, bool) {
	if raw < 0 {
		return 0, true
	}
	if raw > 255 {
		return 255, true
	}

	return byte(raw), false
}
