package wavers

import (
	"fmt"
	"time"
)

// WavHeader is the canonical description of a WAV file, built once per open
// from the fmt and data chunks.
type WavHeader struct {
	// FormatTag is the resolved tag, PCM (1) or IEEE float (3), even for
	// extensible files.
	FormatTag     uint16
	Encoding      SampleType
	BitsPerSample uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16

	// Extensible reports a WAVE_FORMAT_EXTENSIBLE fmt chunk, in which case
	// ValidBitsPerSample and ChannelMask are set from it.
	Extensible         bool
	ValidBitsPerSample uint16
	ChannelMask        uint32

	DataOffset int64
	DataSize   uint32

	// Chunks lists every chunk seen while locating fmt and data, in file order.
	Chunks []ChunkInfo
}

// NumFrames returns the number of frames in the data chunk.
func (h *WavHeader) NumFrames() uint64 {
	if h == nil || h.BlockAlign == 0 {
		return 0
	}

	return uint64(h.DataSize) / uint64(h.BlockAlign)
}

// Length returns the play time of the data chunk.
func (h *WavHeader) Length() time.Duration {
	if h == nil {
		return 0
	}

	return framesDuration(h.NumFrames(), int(h.SampleRate))
}

// Spec returns the metadata snapshot for the header.
func (h *WavHeader) Spec() WavSpec {
	return WavSpec{
		SampleRate:  int(h.SampleRate),
		NumChannels: int(h.NumChannels),
		Duration:    h.NumFrames(),
		Encoding:    h.Encoding,
	}
}

// Clone returns a deep copy of the header.
func (h *WavHeader) Clone() *WavHeader {
	if h == nil {
		return nil
	}

	out := *h
	out.Chunks = cloneChunkInfos(h.Chunks)

	return &out
}

func (h *WavHeader) String() string {
	return fmt.Sprintf("%d Hz @ %s, %d channel(s), %d frames, duration: %s",
		h.SampleRate, h.Encoding, h.NumChannels, h.NumFrames(), h.Length())
}

// resolveHeader interprets the scanned chunks into a header.
func resolveHeader(layout *chunkLayout) (*WavHeader, error) {
	chunk, err := parseFmtChunk(layout.fmtBody)
	if err != nil {
		return nil, err
	}

	encoding, err := chunk.resolveEncoding()
	if err != nil {
		return nil, err
	}

	if chunk.NumChannels == 0 {
		return nil, malformed("fmt chunk declares 0 channels")
	}

	if chunk.SampleRate == 0 {
		return nil, malformed("fmt chunk declares a 0 Hz sample rate")
	}

	expected := int(chunk.NumChannels) * encoding.BytesPerSample()
	if int(chunk.BlockAlign) != expected {
		return nil, malformed("fmt chunk declares block align %d, %d channel(s) of %s need %d",
			chunk.BlockAlign, chunk.NumChannels, encoding, expected)
	}

	if layout.data.Size%uint32(chunk.BlockAlign) != 0 {
		return nil, malformed("data chunk size %d is not a multiple of block align %d", layout.data.Size, chunk.BlockAlign)
	}

	header := &WavHeader{
		FormatTag:     encoding.FormatTag(),
		Encoding:      encoding,
		BitsPerSample: chunk.BitsPerSample,
		NumChannels:   chunk.NumChannels,
		SampleRate:    chunk.SampleRate,
		ByteRate:      chunk.AvgBytesPerSec,
		BlockAlign:    chunk.BlockAlign,
		DataOffset:    layout.data.Offset,
		DataSize:      layout.data.Size,
		Chunks:        cloneChunkInfos(layout.chunks),
	}

	if chunk.Extensible != nil {
		if chunk.Extensible.ValidBitsPerSample > chunk.BitsPerSample {
			return nil, malformed("extensible fmt chunk declares %d valid bits in a %d-bit container",
				chunk.Extensible.ValidBitsPerSample, chunk.BitsPerSample)
		}

		header.Extensible = true
		header.ValidBitsPerSample = chunk.Extensible.ValidBitsPerSample
		header.ChannelMask = chunk.Extensible.ChannelMask
	}

	return header, nil
}
