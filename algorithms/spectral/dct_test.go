package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDCT_ConstantInput(t *testing.T) {
	const n = 40
	d, err := NewDCT(n, 13)
	require.NoError(t, err)

	input := make([]float64, n)
	for i := range input {
		input[i] = 2.5
	}

	coeffs, err := d.Apply(input)
	require.NoError(t, err)
	require.Len(t, coeffs, 13)

	// Orthonormal scaling: a constant c maps to c*sqrt(N) in coefficient 0
	// and exactly 0 everywhere else.
	assert.InDelta(t, 2.5*math.Sqrt(n), coeffs[0], 1e-9)
	for k := 1; k < len(coeffs); k++ {
		assert.InDeltaf(t, 0.0, coeffs[k], 1e-9, "coefficient %d", k)
	}
}

func TestDCT_MatchesDirectFormula(t *testing.T) {
	const n = 26
	const k = 13
	d, err := NewDCT(n, k)
	require.NoError(t, err)

	input := make([]float64, n)
	for i := range input {
		input[i] = math.Sin(float64(i)*0.37) + 0.2*float64(i)
	}

	coeffs, err := d.Apply(input)
	require.NoError(t, err)

	for ki := 0; ki < k; ki++ {
		scale := math.Sqrt(2.0 / float64(n))
		if ki == 0 {
			scale = math.Sqrt(1.0 / float64(n))
		}
		want := 0.0
		for i, v := range input {
			want += v * math.Cos(math.Pi*float64(ki)*(2.0*float64(i)+1.0)/(2.0*float64(n)))
		}
		want *= scale

		assert.InDeltaf(t, want, coeffs[ki], 1e-12, "coefficient %d", ki)
	}
}

func TestDCT_Orthonormality(t *testing.T) {
	// With numCoeffs == inputLength the matrix is square orthonormal:
	// rows have unit norm and are mutually orthogonal.
	const n = 16
	d, err := NewDCT(n, n)
	require.NoError(t, err)

	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			dot := 0.0
			for i := 0; i < n; i++ {
				dot += d.matrix[a][i] * d.matrix[b][i]
			}
			want := 0.0
			if a == b {
				want = 1.0
			}
			assert.InDeltaf(t, want, dot, 1e-12, "rows %d,%d", a, b)
		}
	}
}

func TestDCT_InvalidParams(t *testing.T) {
	_, err := NewDCT(0, 13)
	assert.Error(t, err)

	_, err = NewDCT(40, 0)
	assert.Error(t, err)

	_, err = NewDCT(40, 41)
	assert.Error(t, err)
}

func TestDCT_ApplyLengthMismatch(t *testing.T) {
	d, err := NewDCT(40, 13)
	require.NoError(t, err)

	_, err = d.Apply(make([]float64, 39))
	assert.Error(t, err)
}
