package spectral

import (
	"fmt"
	"math"
)

// FFT computes the Discrete Fourier Transform of real-valued signals using
// an iterative radix-2 Cooley-Tukey algorithm: a bit-reversal permutation
// followed by log2(L) butterfly passes. Signal length must be a power of two.
type FFT struct {
	// No state needed - stateless calculation
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Compute computes the DFT of a real signal. Index k of the result is the
// standard DFT bin: 0 = DC, L/2 = Nyquist, L/2+1..L-1 the negative-frequency
// mirror. Returns an error if the length is not a power of two.
func (f *FFT) Compute(x []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("empty signal")
	}
	if !IsPowerOfTwo(len(x)) {
		return nil, fmt.Errorf("signal length %d is not a power of two", len(x))
	}

	spectrum := make([]complex128, len(x))
	for i, v := range x {
		spectrum[i] = complex(v, 0)
	}

	f.transform(spectrum)
	return spectrum, nil
}

// ComputeComplex computes the in-place DFT of a complex signal whose length
// is a power of two. The input slice is overwritten with the spectrum.
func (f *FFT) ComputeComplex(x []complex128) error {
	if len(x) == 0 {
		return fmt.Errorf("empty signal")
	}
	if !IsPowerOfTwo(len(x)) {
		return fmt.Errorf("signal length %d is not a power of two", len(x))
	}

	f.transform(x)
	return nil
}

// transform runs the iterative radix-2 Cooley-Tukey FFT in place.
// The length of a is a power of two (checked by callers).
func (f *FFT) transform(a []complex128) {
	n := len(a)

	// Bit-reversal permutation: element i moves to the index whose bits
	// are i's bits reversed, so each butterfly pass reads contiguous pairs.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}

	// Butterfly passes: combine sub-transforms of size length/2 into
	// transforms of size length using twiddle factors exp(-2*pi*i*k/length).
	for length := 2; length <= n; length <<= 1 {
		half := length >> 1
		for start := 0; start < n; start += length {
			for k := 0; k < half; k++ {
				angle := -2 * math.Pi * float64(k) / float64(length)
				w := complex(math.Cos(angle), math.Sin(angle))

				even := a[start+k]
				odd := a[start+k+half] * w
				a[start+k] = even + odd
				a[start+k+half] = even - odd
			}
		}
	}
}
