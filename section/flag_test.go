package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlag_AntialiasedRoundTrip(t *testing.T) {
	f := NewFlag(false)
	require.False(t, f.HasAntialiased())

	f = f.WithAntialiased(true)
	require.True(t, f.HasAntialiased())

	f = f.WithAntialiased(false)
	require.False(t, f.HasAntialiased())
}

func TestFlag_ValidateRejectsReservedBits(t *testing.T) {
	require.NoError(t, Flag(0x00).Validate())
	require.NoError(t, Flag(0x01).Validate())

	for bit := uint8(1); bit < 8; bit++ {
		require.Error(t, Flag(1<<bit).Validate())
	}
}
