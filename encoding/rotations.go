package encoding

import (
	"math"

	"github.com/arloliu/spz/endian"
	"github.com/arloliu/spz/errs"
)

// RotationV3BytesPerPoint is the packed size of a smallest-three
// quaternion: a single little-endian uint32.
const RotationV3BytesPerPoint = 4

// RotationV2BytesPerPoint is the packed size of a first-three quaternion:
// three signed 8-bit components.
const RotationV2BytesPerPoint = 3

// rotationV3Scale converts a unit-range component into the 10-bit signed
// domain [-511, 511] used by the smallest-three encoding.
const rotationV3Scale = math.Sqrt2 * 511

// EncodeRotationsV3 packs a flattened [x0,y0,z0,w0,x1,...] quaternion
// slice using smallest-three encoding: the largest-magnitude component of
// each quaternion is dropped and reconstructed on decode; the remaining
// three are stored as signed 10-bit integers alongside a 2-bit index of
// the dropped component, in a single 4-byte little-endian word.
//
// Returns the packed bytes and the number of 10-bit components that
// needed clamping.
func EncodeRotationsV3(quats []float32) ([]byte, int) {
	n := len(quats) / 4
	out := make([]byte, n*RotationV3BytesPerPoint)
	saturated := 0
	engine := endian.GetLittleEndianEngine()

	for i := 0; i < n; i++ {
		base := i * 4
		comps := [4]float32{quats[base], quats[base+1], quats[base+2], quats[base+3]}

		idx := largestMagnitudeIndex(comps)
		if comps[idx] < 0 {
			for k := range comps {
				comps[k] = -comps[k]
			}
		}

		packed := uint32(idx)
		shift := uint(2)
		for k := 0; k < 4; k++ {
			if k == idx {
				continue
			}

			v := int32(math.RoundToEven(float64(comps[k]) * rotationV3Scale))
			if v > 511 {
				v = 511
				saturated++
			} else if v < -511 {
				v = -511
				saturated++
			}

			packed |= (uint32(v) & 0x3FF) << shift
			shift += 10
		}

		engine.PutUint32(out[i*4:i*4+4], packed)
	}

	return out, saturated
}

// DecodeRotationsV3 unpacks the smallest-three layout back into a
// flattened [x,y,z,w] quaternion slice.
func DecodeRotationsV3(data []byte, numPoints int) ([]float32, error) {
	if len(data) != numPoints*RotationV3BytesPerPoint {
		return nil, errs.ErrLengthMismatch
	}

	out := make([]float32, numPoints*4)
	engine := endian.GetLittleEndianEngine()

	for i := 0; i < numPoints; i++ {
		packed := engine.Uint32(data[i*4 : i*4+4])
		idx := int(packed & 0x3)

		var rem [3]float32
		shift := uint(2)
		sumSq := 0.0
		for k := 0; k < 3; k++ {
			raw := int32((packed >> shift) & 0x3FF)
			if raw >= 512 {
				raw -= 1024
			}
			shift += 10

			c := float32(float64(raw) / rotationV3Scale)
			rem[k] = c
			sumSq += float64(c) * float64(c)
		}

		largest := float32(math.Sqrt(math.Max(0, 1-sumSq)))

		base := i * 4
		ri := 0
		for k := 0; k < 4; k++ {
			if k == idx {
				out[base+k] = largest
			} else {
				out[base+k] = rem[ri]
				ri++
			}
		}
	}

	return out, nil
}

// EncodeRotationsV2 packs quaternions using first-three encoding: x,y,z
// are always stored (w is always dropped), each as a signed 8-bit value
// scaled by 127. The quaternion is sign-normalized first so the dropped
// w is non-negative, matching the smallest-three convention and keeping
// decode well-defined.
func EncodeRotationsV2(quats []float32) ([]byte, int) {
	n := len(quats) / 4
	out := make([]byte, n*RotationV2BytesPerPoint)
	saturated := 0

	for i := 0; i < n; i++ {
		base := i * 4
		x, y, z, w := quats[base], quats[base+1], quats[base+2], quats[base+3]
		if w < 0 {
			x, y, z = -x, -y, -z
		}

		comps := [3]float32{x, y, z}
		for k, c := range comps {
			v := int32(math.RoundToEven(float64(c) * 127))
			if v > 127 {
				v = 127
				saturated++
			} else if v < -127 {
				v = -127
				saturated++
			}

			out[i*3+k] = byte(int8(v))
		}
	}

	return out, saturated
}

// DecodeRotationsV2 unpacks the first-three layout, recomputing w as
// sqrt(max(0, 1-x^2-y^2-z^2)).
func DecodeRotationsV2(data []byte, numPoints int) ([]float32, error) {
	if len(data) != numPoints*RotationV2BytesPerPoint {
		return nil, errs.ErrLengthMismatch
	}

	out := make([]float32, numPoints*4)
	for i := 0; i < numPoints; i++ {
		x := float32(int8(data[i*3])) / 127
		y := float32(int8(data[i*3+1])) / 127
		z := float32(int8(data[i*3+2])) / 127

		sumSq := float64(x)*float64(x) + float64(y)*float64(y) + float64(z)*float64(z)
		w := float32(math.Sqrt(math.Max(0, 1-sumSq)))

		base := i * 4
		out[base], out[base+1], out[base+2], out[base+3] = x, y, z, w
	}

	return out, nil
}

func largestMagnitudeIndex(comps [4]float32) int {
	idx := 0
	maxAbs := float32(math.Abs(float64(comps[0])))
	for k := 1; k < 4; k++ {
		a := float32(math.Abs(float64(comps[k])))
		if a > maxAbs {
			maxAbs = a
			idx = k
		}
	}

	return idx
}
