package spectral

import (
	"fmt"
	"math"
)

// DCT computes a truncated orthonormal type-II Discrete Cosine Transform.
// The transform matrix is precomputed once; Apply is a matrix-vector product.
// Used to decorrelate log-mel energies into cepstral coefficients.
type DCT struct {
	inputLength int
	numCoeffs   int
	matrix      [][]float64
}

// NewDCT creates a DCT taking inputLength values to the first numCoeffs
// coefficients of the orthonormal DCT-II:
//
//	coeff[k] = scale(k) * sum_n input[n] * cos(pi*k*(2n+1)/(2N))
//
// with scale(0) = 1/sqrt(N) and scale(k>0) = sqrt(2/N).
func NewDCT(inputLength, numCoeffs int) (*DCT, error) {
	if inputLength <= 0 {
		return nil, fmt.Errorf("DCT input length must be positive, got %d", inputLength)
	}
	if numCoeffs <= 0 || numCoeffs > inputLength {
		return nil, fmt.Errorf("number of coefficients must be in [1, %d], got %d", inputLength, numCoeffs)
	}

	n := float64(inputLength)
	matrix := make([][]float64, numCoeffs)
	for k := 0; k < numCoeffs; k++ {
		matrix[k] = make([]float64, inputLength)

		scale := math.Sqrt(2.0 / n)
		if k == 0 {
			scale = math.Sqrt(1.0 / n)
		}

		for i := 0; i < inputLength; i++ {
			matrix[k][i] = scale * math.Cos(math.Pi*float64(k)*(2.0*float64(i)+1.0)/(2.0*n))
		}
	}

	return &DCT{
		inputLength: inputLength,
		numCoeffs:   numCoeffs,
		matrix:      matrix,
	}, nil
}

// NumCoeffs returns the number of output coefficients.
func (d *DCT) NumCoeffs() int {
	return d.numCoeffs
}

// Apply transforms an input vector of the configured length into its first
// NumCoeffs DCT-II coefficients.
func (d *DCT) Apply(input []float64) ([]float64, error) {
	if len(input) != d.inputLength {
		return nil, fmt.Errorf("input length (%d) doesn't match DCT size (%d)", len(input), d.inputLength)
	}

	coeffs := make([]float64, d.numCoeffs)
	for k := 0; k < d.numCoeffs; k++ {
		sum := 0.0
		for i, v := range input {
			sum += v * d.matrix[k][i]
		}
		coeffs[k] = sum
	}

	return coeffs, nil
}
