package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// HzToMel converts frequency in Hz to mel scale
func HzToMel(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// MelToHz converts mel scale to frequency in Hz
func MelToHz(mel float64) float64 {
	return 700.0 * (math.Pow(10.0, mel/2595.0) - 1.0)
}

// MelFilter is a single triangular filter: a dense weight vector over the
// power spectrum, rising linearly from 0 at the left edge to 1 at the center
// bin and falling back to 0 at the right edge. Weights outside [Left, Right]
// are exactly zero.
type MelFilter struct {
	Weights []float64 `json:"weights"`
	Left    int       `json:"left"`   // first bin with a possibly nonzero weight
	Center  int       `json:"center"` // peak bin
	Right   int       `json:"right"`  // last bin with a possibly nonzero weight
}

// MelFilterBank is an immutable set of overlapping triangular mel filters.
// Built once at engine construction and safe to share across goroutines.
type MelFilterBank struct {
	filters      []MelFilter
	filterLength int
	sampleRate   int
}

// NewMelFilterBank builds numBands triangular filters over the power
// spectrum of a transform of the given size. The mel range spans
// [melFloorHz, sampleRate/2], partitioned into numBands+2 equally spaced
// mel edges; band b uses edges b, b+1, b+2 as its left/center/right.
func NewMelFilterBank(transformSize, sampleRate, numBands int, melFloorHz float64) (*MelFilterBank, error) {
	if numBands <= 0 {
		return nil, fmt.Errorf("number of mel bands must be positive, got %d", numBands)
	}
	if transformSize <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("invalid filter bank parameters: transformSize=%d sampleRate=%d", transformSize, sampleRate)
	}

	filterLength := transformSize/2 + 1
	nyquist := float64(sampleRate) / 2.0

	melMin := HzToMel(melFloorHz)
	melMax := HzToMel(nyquist)

	// numBands+2 equally spaced edges on the mel axis
	edges := make([]int, numBands+2)
	melStep := (melMax - melMin) / float64(numBands+1)
	for i := range edges {
		hz := MelToHz(melMin + float64(i)*melStep)
		bin := int(math.Floor(hz * float64(filterLength) / nyquist))
		if bin < 0 {
			bin = 0
		}
		if bin > filterLength-1 {
			bin = filterLength - 1
		}
		edges[i] = bin
	}

	filters := make([]MelFilter, numBands)
	for b := 0; b < numBands; b++ {
		left := edges[b]
		center := edges[b+1]
		right := edges[b+2]

		weights := make([]float64, filterLength)

		// Rising segment. A collapsed edge (center == left) would divide
		// by zero; those weights stay 0.
		if center != left {
			for j := left; j <= center; j++ {
				weights[j] = float64(j-left) / float64(center-left)
			}
		}

		// Falling segment, same guard for right == center.
		if right != center {
			for j := center; j <= right; j++ {
				weights[j] = float64(right-j) / float64(right-center)
			}
		}

		filters[b] = MelFilter{
			Weights: weights,
			Left:    left,
			Center:  center,
			Right:   right,
		}
	}

	return &MelFilterBank{
		filters:      filters,
		filterLength: filterLength,
		sampleRate:   sampleRate,
	}, nil
}

// NumBands returns the number of filters in the bank.
func (fb *MelFilterBank) NumBands() int {
	return len(fb.filters)
}

// FilterLength returns the power spectrum length the bank was built for.
func (fb *MelFilterBank) FilterLength() int {
	return fb.filterLength
}

// Filter returns the filter for band b.
func (fb *MelFilterBank) Filter(b int) MelFilter {
	return fb.filters[b]
}

// Apply projects a power spectrum into mel band energies. Each energy is
// the dot product of the power spectrum with one filter, restricted to the
// filter's [Left, Right] span. Energies are non-negative by construction.
func (fb *MelFilterBank) Apply(powerSpectrum []float64) ([]float64, error) {
	if len(powerSpectrum) != fb.filterLength {
		return nil, fmt.Errorf("power spectrum length (%d) doesn't match filter length (%d)", len(powerSpectrum), fb.filterLength)
	}

	energies := make([]float64, len(fb.filters))
	for b, filter := range fb.filters {
		lo, hi := filter.Left, filter.Right+1
		energies[b] = floats.Dot(powerSpectrum[lo:hi], filter.Weights[lo:hi])
	}

	return energies, nil
}
