package encoding

import (
	"math"

	"github.com/arloliu/spz/errs"
)

// Position i24 two's-complement range: fractional_bits must keep every
// representable position inside a signed 24-bit value.
const (
	maxI24 = 1<<23 - 1
	minI24 = -(1 << 23)
)

// PositionBytesPerPoint is the on-disk size of one point's x,y,z position
// triple: three signed 24-bit little-endian integers.
const PositionBytesPerPoint = 9

// EncodePositions packs a flattened [x0,y0,z0,x1,...] f32 slice into the
// on-disk i24 fixed-point layout.
//
// Each component is scaled by 2^fractionalBits, rounded half-to-even,
// then clamped to the signed 24-bit range. The returned count is the
// number of components that required clamping.
func EncodePositions(positions []float32, fractionalBits uint8) ([]byte, int) {
	n := len(positions) / 3
	out := make([]byte, n*PositionBytesPerPoint)
	saturated := 0
	scale := math.Ldexp(1, int(fractionalBits))

	for i, v := range positions {
		scaled := math.RoundToEven(float64(v) * scale)
		var fixed int32
		if scaled > maxI24 {
			fixed = maxI24
			saturated++
		} else if scaled < minI24 {
			fixed = minI24
			saturated++
		} else {
			fixed = int32(scaled)
		}

		off := i * 3
		out[off] = byte(fixed)
		out[off+1] = byte(fixed >> 8)
		out[off+2] = byte(fixed >> 16)
	}

	return out, saturated
}

// DecodePositions unpacks the i24 fixed-point layout back into a
// flattened f32 slice of length 3*numPoints.
func DecodePositions(data []byte, numPoints int, fractionalBits uint8) ([]float32, error) {
	if len(data) != numPoints*PositionBytesPerPoint {
		return nil, errs.ErrLengthMismatch
	}

	out := make([]float32, numPoints*3)
	invScale := math.Ldexp(1, -int(fractionalBits))

	for i := range out {
		off := i * 3
		fixed := signExtendI24(data[off], data[off+1], data[off+2])
		out[i] = float32(float64(fixed) * invScale)
	}

	return out, nil
}

func signExtendI24(b0, b1, b2 byte) int32 {
	v := uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16
	if v&0x800000 != 0 {
		v |= 0xFF000000
	}

	return int32(v)
}
