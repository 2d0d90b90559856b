package encoding

import (
	"testing"

	"github.com/arloliu/spz/errs"
	"github.com/stretchr/testify/require"
)

func TestScales_RoundTripWithinTolerance(t *testing.T) {
	in := []float32{-10, 0, 5.9375, -3.3, 2.1, 0.25}

	packed, saturated := EncodeScales(in)
	require.Equal(t, 0, saturated)

	out, err := DecodeScales(packed, len(in)/3)
	require.NoError(t, err)

	for i := range in {
		require.InDelta(t, in[i], out[i], 1.0/32.0)
	}
}

func TestScales_ClampsOutOfRange(t *testing.T) {
	_, saturated := EncodeScales([]float32{-50, 50})

	require.Equal(t, 2, saturated)
}

func TestScales_Bounds(t *testing.T) {
	packed, _ := EncodeScales([]float32{-10, 5.9375})
	require.Equal(t, byte(0), packed[0])
	require.Equal(t, byte(255), packed[1])
}

func TestScales_LengthMismatch(t *testing.T) {
	_, err := DecodeScales([]byte{1, 2}, 1)

	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}
