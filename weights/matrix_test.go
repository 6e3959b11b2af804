package weights_test

import (
	"testing"

	"github.com/kestrelrt/eaxtsp/weights"
	"github.com/stretchr/testify/require"
)

func TestDense_AtSet(t *testing.T) {
	d, err := weights.NewDense(3)
	require.NoError(t, err)

	require.NoError(t, d.Set(0, 1, 4.5))
	w, err := d.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 4.5, w)

	_, err = d.At(3, 0)
	require.ErrorIs(t, err, weights.ErrOutOfRange)
}

func TestNewDenseFromRows_RejectsRagged(t *testing.T) {
	_, err := weights.NewDenseFromRows([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, weights.ErrNonSquare)
}

func TestNearestNeighborsForward(t *testing.T) {
	d, err := weights.NewDenseFromRows([][]float64{
		{0, 1, 5, 9},
		{1, 0, 2, 8},
		{5, 2, 0, 1},
		{9, 8, 1, 0},
	})
	require.NoError(t, err)

	nn, err := weights.NearestNeighborsForward(d, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, nn)
}
