package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/wavers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStereo(t *testing.T, dir string) string {
	t.Helper()

	sig, err := wavers.SignalFromFrames([][]int16{{0, 0}, {100, -100}, {200, -200}, {300, -300}})
	require.NoError(t, err)

	path := filepath.Join(dir, "stereo.wav")
	require.NoError(t, wavers.Write(path, sig, 44100))

	return path
}

func TestRunRequiresPath(t *testing.T) {
	var out bytes.Buffer

	err := run(nil, &out)
	require.ErrorIs(t, err, errMissingPath)
}

func TestRunPrintsFormat(t *testing.T) {
	path := writeStereo(t, t.TempDir())

	var out bytes.Buffer
	require.NoError(t, run([]string{path}, &out))

	assert.Contains(t, out.String(), "44100 Hz, 2 channel(s), 4 frames")
	assert.Contains(t, out.String(), "int16")
	assert.Contains(t, out.String(), "format tag 0x0001, block align 4, 176400 bytes/sec")
	assert.NotContains(t, out.String(), "chunk")
	assert.NotContains(t, out.String(), "extensible")
}

func TestRunListsChunks(t *testing.T) {
	dir := t.TempDir()
	path := writeStereo(t, dir)

	sig, err := wavers.NewSignal(make([]float32, 6), 6)
	require.NoError(t, err)

	surround := filepath.Join(dir, "surround.wav")
	require.NoError(t, wavers.Write(surround, sig, 48000))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-chunks", path, surround}, &out))

	assert.Contains(t, out.String(), `chunk "fmt " @20 (16 bytes)`)
	assert.Contains(t, out.String(), `chunk "data" @44 (16 bytes)`)
	assert.Contains(t, out.String(), `chunk "fmt " @20 (40 bytes)`)
	assert.Contains(t, out.String(), "extensible: 32 valid bits, channel mask 0x0")
}

func TestRunRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	var out bytes.Buffer

	err := run([]string{path}, &out)
	require.ErrorIs(t, err, wavers.ErrMalformedHeader)
	assert.Contains(t, err.Error(), path)
}

func TestRunInvalidPath(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"/nonexistent/path.wav"}, &out)
	require.ErrorIs(t, err, wavers.ErrIOFailure)
}

func TestRunPrintsLevels(t *testing.T) {
	sig, err := wavers.SignalFromFrames([][]float64{{0.5, -1}, {-0.5, 1}, {0.5, -1}, {-0.5, 1}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "levels.wav")
	require.NoError(t, wavers.Write(path, sig, 8000))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-levels", path}, &out))

	assert.Contains(t, out.String(), "channel 0: peak 0.5000, rms 0.5000")
	assert.Contains(t, out.String(), "channel 1: peak 1.0000, rms 1.0000")
}

func TestChannelLevels(t *testing.T) {
	assert.Nil(t, channelLevels(nil))

	sig, err := wavers.NewSignal([]int16{16384, 0, -16384, 0}, 2)
	require.NoError(t, err)

	levels := channelLevels(wavers.Convert[float64](sig).Matrix())
	require.Len(t, levels, 2)
	assert.InDelta(t, 0.5, levels[0].peak, 1e-12)
	assert.InDelta(t, 0.5, levels[0].rms, 1e-12)
	assert.Zero(t, levels[1].peak)
	assert.Zero(t, levels[1].rms)
}
