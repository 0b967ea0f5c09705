package cepstrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-cepstra/algorithms/filters"
	"github.com/RyanBlaney/sonido-cepstra/algorithms/spectral"
	"github.com/RyanBlaney/sonido-cepstra/algorithms/windowing"
	"github.com/RyanBlaney/sonido-cepstra/logging"
)

var (
	// ErrInvalidConfig indicates invalid construction parameters.
	ErrInvalidConfig = errors.New("invalid engine configuration")

	// ErrEmptyFrame indicates an empty input frame.
	ErrEmptyFrame = errors.New("empty input frame")

	// ErrFrameTooLong indicates an input frame longer than the transform size.
	ErrFrameTooLong = errors.New("input frame exceeds transform size")
)

// logEnergyFloor clamps mel band energies before the logarithm so silent
// bands produce ln(1e-10) instead of -Inf.
const logEnergyFloor = 1e-10

// Engine converts a frame of raw time-domain samples into a fixed-length
// vector of Mel-Frequency Cepstral Coefficients.
//
// The pipeline per frame: pre-emphasis (optional) -> zero-pad to the
// transform size -> Hamming window -> FFT -> power spectrum -> mel
// filterbank -> floored log -> truncated orthonormal DCT-II.
//
// All engine state (window, filterbank, DCT matrix) is built once at
// construction and never mutated, so a single Engine is safe for
// concurrent use; each call allocates its own transient buffers.
type Engine struct {
	config      Config
	window      *windowing.Hamming
	preEmphasis *filters.PreEmphasis
	fft         *spectral.FFT
	power       *spectral.PowerSpectrum
	filterBank  *spectral.MelFilterBank
	dct         *spectral.DCT
	logger      logging.Logger
}

// NewEngine validates the configuration and builds the mel filterbank and
// DCT matrix. Construction fails atomically: on error no partially-built
// engine is returned.
func NewEngine(config Config) (*Engine, error) {
	if !spectral.IsPowerOfTwo(config.TransformSize) {
		return nil, fmt.Errorf("%w: transform size %d is not a power of two", ErrInvalidConfig, config.TransformSize)
	}
	if config.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, config.SampleRate)
	}
	if config.NumBands <= 0 {
		return nil, fmt.Errorf("%w: number of mel bands must be positive, got %d", ErrInvalidConfig, config.NumBands)
	}
	if config.NumCoeffs <= 0 {
		return nil, fmt.Errorf("%w: number of coefficients must be positive, got %d", ErrInvalidConfig, config.NumCoeffs)
	}
	if config.NumCoeffs > config.NumBands {
		return nil, fmt.Errorf("%w: number of coefficients (%d) exceeds number of mel bands (%d)", ErrInvalidConfig, config.NumCoeffs, config.NumBands)
	}
	if config.MelFloorHz < 0 || config.MelFloorHz >= float64(config.SampleRate)/2.0 {
		return nil, fmt.Errorf("%w: mel floor %.1f Hz outside [0, Nyquist)", ErrInvalidConfig, config.MelFloorHz)
	}

	filterBank, err := spectral.NewMelFilterBank(config.TransformSize, config.SampleRate, config.NumBands, config.MelFloorHz)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	dct, err := spectral.NewDCT(config.NumBands, config.NumCoeffs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	logger := logging.WithFields(logging.Fields{
		"component": "cepstral_engine",
	})
	logger.Info("cepstral engine constructed", logging.Fields{
		"transform_size": config.TransformSize,
		"sample_rate":    config.SampleRate,
		"num_bands":      config.NumBands,
		"num_coeffs":     config.NumCoeffs,
		"mel_floor_hz":   config.MelFloorHz,
		"pre_emphasis":   config.PreEmphasis,
	})

	return &Engine{
		config:      config,
		window:      windowing.NewHamming(config.TransformSize),
		preEmphasis: filters.NewPreEmphasis(config.PreEmphasis),
		fft:         spectral.NewFFT(),
		power:       spectral.NewPowerSpectrum(),
		filterBank:  filterBank,
		dct:         dct,
		logger:      logger,
	}, nil
}

// ExtractCepstrum runs the full pipeline on one frame and returns exactly
// NumCoeffs coefficients regardless of the input length. Frames shorter
// than the transform size are zero-padded; empty or over-long frames are
// rejected. The call is stateless: errors never affect later calls.
func (e *Engine) ExtractCepstrum(samples []float32) ([]float32, error) {
	logEnergies, err := e.logMelEnergies(samples)
	if err != nil {
		return nil, err
	}

	coeffs, err := e.dct.Apply(logEnergies)
	if err != nil {
		return nil, err
	}

	out := make([]float32, len(coeffs))
	for i, c := range coeffs {
		out[i] = float32(c)
	}
	return out, nil
}

// ExtractCepstrumFrames processes multiple frames.
func (e *Engine) ExtractCepstrumFrames(frames [][]float32) ([][]float32, error) {
	out := make([][]float32, len(frames))
	for t, frame := range frames {
		coeffs, err := e.ExtractCepstrum(frame)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", t, err)
		}
		out[t] = coeffs
	}
	return out, nil
}

// MelEnergies exposes the pre-log mel band energies for one frame, mainly
// for diagnostics and testing.
func (e *Engine) MelEnergies(samples []float32) ([]float64, error) {
	if err := e.checkFrame(samples); err != nil {
		return nil, err
	}
	return e.melEnergies(samples)
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// FilterBank returns the engine's mel filterbank (for debugging/visualization)
func (e *Engine) FilterBank() *spectral.MelFilterBank {
	return e.filterBank
}

func (e *Engine) checkFrame(samples []float32) error {
	if len(samples) == 0 {
		return ErrEmptyFrame
	}
	if len(samples) > e.config.TransformSize {
		return fmt.Errorf("%w: got %d samples, transform size is %d", ErrFrameTooLong, len(samples), e.config.TransformSize)
	}
	return nil
}

func (e *Engine) logMelEnergies(samples []float32) ([]float64, error) {
	if err := e.checkFrame(samples); err != nil {
		return nil, err
	}

	energies, err := e.melEnergies(samples)
	if err != nil {
		return nil, err
	}

	for i, energy := range energies {
		energies[i] = math.Log(math.Max(energy, logEnergyFloor))
	}
	return energies, nil
}

func (e *Engine) melEnergies(samples []float32) ([]float64, error) {
	// Zero-pad to the transform size; the tail of the buffer stays zero.
	frame := make([]float64, e.config.TransformSize)
	for i, s := range samples {
		frame[i] = float64(s)
	}

	if e.preEmphasis.Enabled() {
		filtered := e.preEmphasis.Apply(frame[:len(samples)])
		copy(frame, filtered)
	}

	if err := e.window.ApplyInPlace(frame); err != nil {
		return nil, err
	}

	spectrum, err := e.fft.Compute(frame)
	if err != nil {
		return nil, err
	}

	powerSpectrum := e.power.Compute(spectrum)
	return e.filterBank.Apply(powerSpectrum)
}
