package encoding

import (
	"testing"

	"github.com/arloliu/spz/errs"
	"github.com/stretchr/testify/require"
)

func TestPositions_DecodeFixedPointI24(t *testing.T) {
	// three i24s 0x001000, 0x000000, 0x000000 at fractional_bits=12
	// decode to (1.0, 0.0, 0.0).
	data := []byte{0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

	got, err := DecodePositions(data, 1, 12)

	require.NoError(t, err)
	require.Equal(t, []float32{1.0, 0.0, 0.0}, got)
}

func TestPositions_RoundTripWithinTolerance(t *testing.T) {
	// tolerance is 2^-fractionalBits.
	const fractionalBits = 12
	in := []float32{1.5, -2.25, 0, 100.125, -0.0001, 7.999}

	packed, saturated := EncodePositions(in, fractionalBits)
	require.Equal(t, 0, saturated)

	out, err := DecodePositions(packed, len(in)/3, fractionalBits)
	require.NoError(t, err)

	tolerance := float32(1.0 / float64(int(1)<<fractionalBits))
	for i := range in {
		require.InDelta(t, in[i], out[i], float64(tolerance))
	}
}

func TestPositions_SaturationOnOverflow(t *testing.T) {
	in := []float32{1e9, 0, 0}

	_, saturated := EncodePositions(in, 12)

	require.Equal(t, 1, saturated)
}

func TestPositions_LengthMismatch(t *testing.T) {
	_, err := DecodePositions([]byte{1, 2, 3}, 2, 12)

	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestPositions_EmptyArrays(t *testing.T) {
	packed, saturated := EncodePositions(nil, 12)
	require.Empty(t, packed)
	require.Equal(t, 0, saturated)

	out, err := DecodePositions(nil, 0, 12)
	require.NoError(t, err)
	require.Empty(t, out)
}
