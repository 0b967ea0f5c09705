// Command cepstra extracts Mel-Frequency Cepstral Coefficients from a WAV
// file, one vector per non-overlapping frame.
//
// Usage:
//
//	cepstra input.wav
//	cepstra -size 1024 -bands 26 -coeffs 13 input.wav
//	cepstra -json input.wav > coeffs.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/RyanBlaney/sonido-cepstra/cepstrum"
	"github.com/RyanBlaney/sonido-cepstra/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	size := flag.Int("size", 2048, "FFT transform size (power of two)")
	bands := flag.Int("bands", 40, "Number of mel filter bands")
	coeffs := flag.Int("coeffs", 13, "Number of cepstral coefficients per frame")
	floor := flag.Float64("floor", 20.0, "Lowest mel band edge in Hz")
	preEmph := flag.Float64("preemph", 0.97, "Pre-emphasis coefficient (0 disables)")
	asJSON := flag.Bool("json", false, "Emit frames as a JSON array")
	quiet := flag.Bool("quiet", false, "Suppress library logging")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one input file, got %d arguments", flag.NArg())
	}

	if *quiet {
		logging.SetGlobalLogger(&logging.NoOpLogger{})
	}

	samples, sampleRate, err := decodeWAV(flag.Arg(0))
	if err != nil {
		return err
	}

	engine, err := cepstrum.NewEngine(cepstrum.Config{
		TransformSize: *size,
		SampleRate:    sampleRate,
		NumBands:      *bands,
		NumCoeffs:     *coeffs,
		MelFloorHz:    *floor,
		PreEmphasis:   *preEmph,
	})
	if err != nil {
		return err
	}

	frames := splitFrames(samples, *size)
	vectors, err := engine.ExtractCepstrumFrames(frames)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(vectors)
	}

	for t, vec := range vectors {
		fmt.Printf("frame %d:", t)
		for _, c := range vec {
			fmt.Printf(" %.4f", c)
		}
		fmt.Println()
	}
	return nil
}

// decodeWAV reads a WAV file into normalized mono float32 samples.
// Multichannel files are mixed down by channel averaging.
func decodeWAV(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return monoFloat32(buf, int(decoder.BitDepth)), buf.Format.SampleRate, nil
}

func monoFloat32(buf *audio.IntBuffer, bitDepth int) []float32 {
	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}

	scale := float64(int64(1) << (bitDepth - 1))
	numFrames := len(buf.Data) / channels
	samples := make([]float32, numFrames)

	for i := 0; i < numFrames; i++ {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += float64(buf.Data[i*channels+ch])
		}
		samples[i] = float32(sum / float64(channels) / scale)
	}

	return samples
}

// splitFrames cuts the signal into non-overlapping frames of at most
// frameSize samples. The final short frame is kept; the engine zero-pads it.
func splitFrames(samples []float32, frameSize int) [][]float32 {
	var frames [][]float32
	for start := 0; start < len(samples); start += frameSize {
		end := start + frameSize
		if end > len(samples) {
			end = len(samples)
		}
		frames = append(frames, samples[start:end])
	}
	return frames
}
