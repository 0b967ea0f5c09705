package filters

// PreEmphasis implements a first-order pre-emphasis filter for speech and
// audio frames. Pre-emphasis compensates for the natural spectral roll-off
// of speech, boosting higher frequencies before spectral analysis.
//
// The filter implements the difference equation:
//
//	y[n] = x[n] - coefficient*x[n-1]
//
// Typical coefficients are 0.95-0.97 for speech. Each frame is filtered
// independently; no state is carried across frames.
type PreEmphasis struct {
	coefficient float64
}

// NewPreEmphasis creates a pre-emphasis filter with the given coefficient.
// Coefficients outside (0, 1) disable the filter (Apply becomes a copy).
func NewPreEmphasis(coefficient float64) *PreEmphasis {
	return &PreEmphasis{coefficient: coefficient}
}

// Coefficient returns the filter coefficient.
func (pe *PreEmphasis) Coefficient() float64 {
	return pe.coefficient
}

// Enabled reports whether the filter actually modifies frames.
func (pe *PreEmphasis) Enabled() bool {
	return pe.coefficient > 0 && pe.coefficient < 1
}

// Apply filters one frame, returning a new slice. The first sample passes
// through unchanged (x[-1] is taken as zero).
func (pe *PreEmphasis) Apply(frame []float64) []float64 {
	out := make([]float64, len(frame))
	if len(frame) == 0 {
		return out
	}

	if !pe.Enabled() {
		copy(out, frame)
		return out
	}

	out[0] = frame[0]
	for i := 1; i < len(frame); i++ {
		out[i] = frame[i] - pe.coefficient*frame[i-1]
	}

	return out
}
