package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/wavers"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGeneratesWavFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sine.wav")

	err := run([]string{"-output", outPath, "-length", "0.01", "-frequency", "220"})
	require.NoError(t, err)

	fi, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(44))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile(), "generated file is not a valid wav")
	assert.EqualValues(t, 48000, dec.SampleRate)
	assert.EqualValues(t, 16, dec.BitDepth)
	assert.EqualValues(t, 1, dec.NumChans)
}

func TestRunFlagParseError(t *testing.T) {
	err := run([]string{"-length", "not-a-number"})
	require.Error(t, err)
}

func TestRunDefaultParams(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "default.wav")

	err := run([]string{"-output", outPath, "-length", "0.005"})
	require.NoError(t, err)

	frames, err := wavers.Duration(outPath)
	require.NoError(t, err)

	// 0.005 sec * 48000 Hz = 240 samples
	assert.EqualValues(t, 240, frames)
}

func TestRunSampleTypes(t *testing.T) {
	for _, st := range wavers.SampleTypes {
		t.Run(st.String(), func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "sine.wav")

			err := run([]string{"-output", outPath, "-length", "0.01", "-rate", "8000", "-type", st.String()})
			require.NoError(t, err)

			spec, err := wavers.ReadSpec(outPath)
			require.NoError(t, err)
			assert.Equal(t, wavers.WavSpec{SampleRate: 8000, NumChannels: 1, Duration: 80, Encoding: st}, spec)

			sig, _, err := wavers.Read[float64](outPath)
			require.NoError(t, err)
			assert.InDelta(t, 0, sig.At(0, 0), 1e-9)

			var peak float64
			for _, v := range sig.Samples() {
				peak = max(peak, v)
			}

			assert.InDelta(t, 1, peak, 0.01)
		})
	}
}

func TestRunRejectsUnknownType(t *testing.T) {
	err := run([]string{"-output", filepath.Join(t.TempDir(), "x.wav"), "-type", "uint8"})
	require.ErrorIs(t, err, wavers.ErrUnsupportedEncoding)

	err = run([]string{"-output", filepath.Join(t.TempDir(), "x.wav"), "-rate", "0"})
	require.ErrorIs(t, err, wavers.ErrInvalidSampleRate)
}

func TestRunInvalidOutputPath(t *testing.T) {
	err := run([]string{"-output", "/nonexistent/dir/file.wav", "-length", "0.001"})
	require.ErrorIs(t, err, wavers.ErrIOFailure)
}
