package spectral

// PowerSpectrum reduces a complex spectrum to the squared magnitude of its
// non-redundant half. A real input signal yields a Hermitian-symmetric
// spectrum, so bins above L/2 carry no independent information.
type PowerSpectrum struct {
	// No state needed - stateless calculation
}

// NewPowerSpectrum creates a new power spectrum calculator
func NewPowerSpectrum() *PowerSpectrum {
	return &PowerSpectrum{}
}

// Compute returns the power spectrum of a complex spectrum: element i is
// re(spectrum[i])^2 + im(spectrum[i])^2 for i in [0, L/2]. Output length
// is L/2+1 (DC through Nyquist).
func (ps *PowerSpectrum) Compute(spectrum []complex128) []float64 {
	if len(spectrum) == 0 {
		return []float64{}
	}

	bins := len(spectrum)/2 + 1
	power := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re := real(spectrum[i])
		im := imag(spectrum[i])
		power[i] = re*re + im*im
	}

	return power
}

// ComputeFrames processes multiple complex spectrum frames
func (ps *PowerSpectrum) ComputeFrames(spectra [][]complex128) [][]float64 {
	if len(spectra) == 0 {
		return [][]float64{}
	}

	power := make([][]float64, len(spectra))
	for t, spectrum := range spectra {
		power[t] = ps.Compute(spectrum)
	}

	return power
}
