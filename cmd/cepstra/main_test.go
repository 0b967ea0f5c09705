package main

import (
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrames(t *testing.T) {
	samples := make([]float32, 5000)

	frames := splitFrames(samples, 2048)
	require.Len(t, frames, 3)
	assert.Len(t, frames[0], 2048)
	assert.Len(t, frames[1], 2048)
	assert.Len(t, frames[2], 904)

	assert.Nil(t, splitFrames(nil, 2048))
}

func TestMonoFloat32(t *testing.T) {
	t.Run("mono_16bit", func(t *testing.T) {
		buf := &audio.IntBuffer{
			Format: &audio.Format{NumChannels: 1, SampleRate: 44100},
			Data:   []int{32767, -32768, 0},
		}

		samples := monoFloat32(buf, 16)
		require.Len(t, samples, 3)
		assert.InDelta(t, 1.0, float64(samples[0]), 1e-4)
		assert.InDelta(t, -1.0, float64(samples[1]), 1e-4)
		assert.Zero(t, samples[2])
	})

	t.Run("stereo_downmix", func(t *testing.T) {
		buf := &audio.IntBuffer{
			Format: &audio.Format{NumChannels: 2, SampleRate: 44100},
			Data:   []int{16384, -16384, 8192, 8192},
		}

		samples := monoFloat32(buf, 16)
		require.Len(t, samples, 2)
		assert.InDelta(t, 0.0, float64(samples[0]), 1e-6)
		assert.InDelta(t, 0.25, float64(samples[1]), 1e-3)
	})
}
