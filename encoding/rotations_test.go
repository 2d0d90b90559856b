package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotationsV3_IdentityQuaternionRoundTrips(t *testing.T) {
	// encoding (0,0,0,1) produces idx=3 and all smallest components 0;
	// decoding returns the same quaternion.
	quat := []float32{0, 0, 0, 1}

	packed, saturated := EncodeRotationsV3(quat)
	require.Equal(t, 0, saturated)
	require.Len(t, packed, 4)
	require.Equal(t, byte(3), packed[0]&0x3)

	out, err := DecodeRotationsV3(packed, 1)
	require.NoError(t, err)
	require.InDeltaSlice(t, quat, out, 1e-6)
}

func TestRotationsV3_RoundTripWithinTolerance(t *testing.T) {
	cases := [][4]float32{
		{0, 0, 0, 1},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		normalizeQ(0.5, 0.5, 0.5, 0.5),
		normalizeQ(0.2, -0.6, 0.1, 0.77),
		normalizeQ(-0.2, -0.6, 0.1, -0.77),
	}

	for _, c := range cases {
		quat := []float32{c[0], c[1], c[2], c[3]}
		packed, _ := EncodeRotationsV3(quat)

		out, err := DecodeRotationsV3(packed, 1)
		require.NoError(t, err)

		requireSameRotation(t, quat, out, math.Sqrt2/1022)
	}
}

func TestRotationsV2_RoundTripWithinTolerance(t *testing.T) {
	cases := [][4]float32{
		{0, 0, 0, 1},
		normalizeQ(0.3, 0.3, 0.3, 0.85),
		normalizeQ(-0.1, 0.2, -0.3, 0.9),
	}

	for _, c := range cases {
		quat := []float32{c[0], c[1], c[2], c[3]}
		packed, _ := EncodeRotationsV2(quat)

		out, err := DecodeRotationsV2(packed, 1)
		require.NoError(t, err)

		requireSameRotation(t, quat, out, 1.0/127)
	}
}

// requireSameRotation compares quaternions up to the sign ambiguity that
// the smallest/first-three encodings introduce when the dropped
// component's original sign was negative (the decoded quaternion is the
// same rotation, possibly negated).
func requireSameRotation(t *testing.T, want, got []float32, tol float64) {
	t.Helper()

	dot := float64(want[0])*float64(got[0]) + float64(want[1])*float64(got[1]) +
		float64(want[2])*float64(got[2]) + float64(want[3])*float64(got[3])

	if dot < 0 {
		for i := range got {
			got[i] = -got[i]
		}
	}

	require.InDeltaSlice(t, want, got, tol)
}

func normalizeQ(x, y, z, w float32) [4]float32 {
	n := math.Sqrt(float64(x)*float64(x) + float64(y)*float64(y) + float64(z)*float64(z) + float64(w)*float64(w))
	return [4]float32{
		float32(float64(x) / n),
		float32(float64(y) / n),
		float32(float64(z) / n),
		float32(float64(w) / n),
	}
}

func TestRotationsV3_LengthMismatch(t *testing.T) {
	_, err := DecodeRotationsV3([]byte{1, 2, 3}, 1)
	require.Error(t, err)
}

func TestRotationsV2_LengthMismatch(t *testing.T) {
	_, err := DecodeRotationsV2([]byte{1, 2}, 1)
	require.Error(t, err)
}
