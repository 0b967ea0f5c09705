package cepstrum

// Config holds the construction-time parameters of an Engine. All values
// are fixed for the engine's lifetime; per-call behavior is never
// reconfigured.
type Config struct {
	// TransformSize is the FFT length. Must be a power of two. Input
	// frames are zero-padded to this length, so it also bounds the
	// longest frame the engine accepts.
	TransformSize int `json:"transform_size"`

	// SampleRate in Hz, used for the mel-scale bin mapping.
	SampleRate int `json:"sample_rate"`

	// NumBands is the number of triangular mel filters.
	NumBands int `json:"num_bands"`

	// NumCoeffs is the output vector length (coefficients kept after
	// the cepstral transform).
	NumCoeffs int `json:"num_coeffs"`

	// MelFloorHz is the lowest mel-band edge in Hz.
	MelFloorHz float64 `json:"mel_floor_hz"`

	// PreEmphasis is the pre-emphasis filter coefficient applied to each
	// frame before windowing. Values outside (0, 1) disable the filter.
	PreEmphasis float64 `json:"pre_emphasis"`
}

// DefaultConfig returns sensible defaults for wideband audio analysis.
func DefaultConfig() Config {
	return Config{
		TransformSize: 2048,
		SampleRate:    44100,
		NumBands:      40,
		NumCoeffs:     13,
		MelFloorHz:    20.0,
		PreEmphasis:   0.97,
	}
}
