package coord

import (
	"testing"

	"github.com/arloliu/spz/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTransform_RDFToRUBFlipsYAndZ(t *testing.T) {
	tr, err := NewTransform(RDF, RUB)
	require.NoError(t, err)

	positions := []float32{1, 2, 3}
	tr.ApplyPositions(positions)

	require.Equal(t, []float32{1, -2, -3}, positions)
}

func TestNewTransform_IdentityWhenSystemsMatch(t *testing.T) {
	tr, err := NewTransform(LUF, LUF)
	require.NoError(t, err)
	require.True(t, tr.IsIdentity())
}

func TestNewTransform_UnknownSystem(t *testing.T) {
	_, err := NewTransform(RDF, System(99))
	require.ErrorIs(t, err, errs.ErrUnknownCoordinateSystem)

	_, err = NewTransform(System(99), RUB)
	require.ErrorIs(t, err, errs.ErrUnknownCoordinateSystem)
}

func TestNewTransform_UnspecifiedIsIdentity(t *testing.T) {
	tr, err := NewTransform(Unspecified, RUB)
	require.NoError(t, err)
	require.True(t, tr.IsIdentity())

	tr, err = NewTransform(RDF, Unspecified)
	require.NoError(t, err)
	require.True(t, tr.IsIdentity())

	tr, err = NewTransform(Unspecified, Unspecified)
	require.NoError(t, err)
	require.True(t, tr.IsIdentity())
}

func TestTransform_InvolutionProperty(t *testing.T) {
	// Converting A to B and back to A reproduces the input.
	systems := []System{LDB, RDB, LUB, RUB, LDF, RDF, LUF, RUF}

	for _, a := range systems {
		for _, b := range systems {
			aToB, err := NewTransform(a, b)
			require.NoError(t, err)
			bToA, err := NewTransform(b, a)
			require.NoError(t, err)

			positions := []float32{1.5, -2.25, 3.75}
			rotations := []float32{0.1, 0.2, 0.3, 0.9}
			sh := make([]float32, 15*3)
			for i := range sh {
				sh[i] = float32(i) * 0.01
			}

			wantPositions := append([]float32(nil), positions...)
			wantRotations := append([]float32(nil), rotations...)
			wantSH := append([]float32(nil), sh...)

			aToB.ApplyPositions(positions)
			bToA.ApplyPositions(positions)
			require.InDeltaSlice(t, wantPositions, positions, 1e-6)

			aToB.ApplyRotations(rotations)
			bToA.ApplyRotations(rotations)
			require.InDeltaSlice(t, wantRotations, rotations, 1e-6)

			require.NoError(t, aToB.ApplySH(sh, 3))
			require.NoError(t, bToA.ApplySH(sh, 3))
			require.InDeltaSlice(t, wantSH, sh, 1e-6)
		}
	}
}

func TestTransform_ApplyRotationsSingleAxisFlip(t *testing.T) {
	// Mirroring only the x axis is the textbook case: y and z flip, x and
	// w are unchanged.
	tr := Transform{SX: -1, SY: 1, SZ: 1}

	quat := []float32{0.1, 0.2, 0.3, 0.9}
	tr.ApplyRotations(quat)

	require.InDeltaSlice(t, []float32{0.1, -0.2, -0.3, 0.9}, quat, 1e-6)
}

func TestTransform_ApplySHInvalidDegree(t *testing.T) {
	tr := Transform{SX: 1, SY: 1, SZ: 1}
	err := tr.ApplySH(make([]float32, 3), 4)
	require.Error(t, err)
}

func TestTransform_ApplySHDegreeZeroNoop(t *testing.T) {
	tr := Transform{SX: -1, SY: 1, SZ: 1}
	require.NoError(t, tr.ApplySH(nil, 0))
}
