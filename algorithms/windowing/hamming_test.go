package windowing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHamming_Coefficients(t *testing.T) {
	h := NewHamming(64)
	coeffs := h.GetCoefficients()
	require.Len(t, coeffs, 64)

	// Symmetric Hamming: endpoints at 0.54-0.46 = 0.08, symmetric about
	// the middle, never above 1.
	assert.InDelta(t, 0.08, coeffs[0], 1e-12)
	assert.InDelta(t, 0.08, coeffs[63], 1e-12)
	for i := 0; i < 32; i++ {
		assert.InDeltaf(t, coeffs[i], coeffs[63-i], 1e-12, "index %d", i)
	}
	for i, c := range coeffs {
		assert.Greaterf(t, c, 0.0, "index %d", i)
		assert.LessOrEqualf(t, c, 1.0, "index %d", i)
	}
}

func TestHamming_SizeOne(t *testing.T) {
	// L=1 would divide by zero in the cosine term; the window degenerates
	// to a single unity coefficient.
	h := NewHamming(1)
	coeffs := h.GetCoefficients()
	require.Len(t, coeffs, 1)
	assert.Equal(t, 1.0, coeffs[0])
}

func TestHamming_Apply(t *testing.T) {
	h := NewHamming(8)

	signal := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	windowed := h.Apply(signal)
	require.NotNil(t, windowed)
	assert.Equal(t, h.GetCoefficients(), windowed)

	// Original untouched
	for i, s := range signal {
		assert.Equalf(t, 1.0, s, "index %d", i)
	}

	// Length mismatch
	assert.Nil(t, h.Apply(make([]float64, 7)))
}

func TestHamming_ApplyInPlace(t *testing.T) {
	h := NewHamming(8)

	signal := []float64{2, 2, 2, 2, 2, 2, 2, 2}
	require.NoError(t, h.ApplyInPlace(signal))
	for i, c := range h.GetCoefficients() {
		assert.InDeltaf(t, 2*c, signal[i], 1e-12, "index %d", i)
	}

	assert.Error(t, h.ApplyInPlace(make([]float64, 9)))
}
