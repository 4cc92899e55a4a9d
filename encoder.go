package wavers

import (
	"encoding/binary"
	"fmt"
	"math"
)

// planEncoding validates sig for encoding and describes the file it encodes
// to: its fmt chunk and the canonical header. The signal's own sample type is
// always the stored type.
func planEncoding[T Sample](sig *Signal[T], sampleRate int) (*formatChunk, *WavHeader, error) {
	if sig == nil {
		return nil, nil, fmt.Errorf("%w: nil signal", ErrShapeMismatch)
	}

	if sig.channels <= 0 || sig.channels > math.MaxUint16 {
		return nil, nil, fmt.Errorf("%w: %d channels can't be stored in a fmt chunk", ErrShapeMismatch, sig.channels)
	}

	if len(sig.data)%sig.channels != 0 {
		return nil, nil, fmt.Errorf("%w: %d samples is not a multiple of %d channels", ErrIncompleteFrame, len(sig.data), sig.channels)
	}

	if sampleRate <= 0 || uint64(sampleRate) > math.MaxUint32 {
		return nil, nil, fmt.Errorf("%w: %d Hz", ErrInvalidSampleRate, sampleRate)
	}

	st := sig.SampleType()

	blockAlign := sig.channels * st.BytesPerSample()
	if blockAlign > math.MaxUint16 {
		return nil, nil, fmt.Errorf("%w: block align of %d bytes can't be stored in a fmt chunk", ErrShapeMismatch, blockAlign)
	}

	byteRate := uint64(sampleRate) * uint64(blockAlign)
	if byteRate > math.MaxUint32 {
		return nil, nil, fmt.Errorf("%w: %d Hz gives a byte rate of %d", ErrInvalidSampleRate, sampleRate, byteRate)
	}

	chunk := &formatChunk{
		FormatTag:      st.FormatTag(),
		NumChannels:    uint16(sig.channels),
		SampleRate:     uint32(sampleRate),
		AvgBytesPerSec: uint32(byteRate),
		BlockAlign:     uint16(blockAlign),
		BitsPerSample:  uint16(st.BitsPerSample()),
	}

	// more than two channels are written as WAVE_FORMAT_EXTENSIBLE.
	if sig.channels > 2 {
		chunk.Extensible = &formatExtension{
			ValidBitsPerSample: chunk.BitsPerSample,
			SubFormat:          makeSubFormatGUID(chunk.FormatTag),
		}
		chunk.FormatTag = wavFormatExtensible
	}

	fmtSize := int64(fmtChunkSizeClassic)
	if chunk.Extensible != nil {
		fmtSize = fmtChunkSizeExtensible
	}

	dataSize := int64(len(sig.data)) * int64(st.BytesPerSample())
	riffSize := 4 + chunkHeaderSize + fmtSize + chunkHeaderSize + dataSize + dataSize%2

	if riffSize > math.MaxUint32 {
		return nil, nil, fmt.Errorf("%w: %d data bytes", ErrSignalTooLarge, dataSize)
	}

	fmtChunk := ChunkInfo{ID: [4]byte{'f', 'm', 't', ' '}, Offset: riffHeaderSize + chunkHeaderSize, Size: uint32(fmtSize)}
	dataChunk := ChunkInfo{ID: [4]byte{'d', 'a', 't', 'a'}, Offset: fmtChunk.Offset + fmtSize + chunkHeaderSize, Size: uint32(dataSize)}

	header := &WavHeader{
		FormatTag:     st.FormatTag(),
		Encoding:      st,
		BitsPerSample: chunk.BitsPerSample,
		NumChannels:   chunk.NumChannels,
		SampleRate:    chunk.SampleRate,
		ByteRate:      chunk.AvgBytesPerSec,
		BlockAlign:    chunk.BlockAlign,
		Extensible:    chunk.Extensible != nil,
		DataOffset:    dataChunk.Offset,
		DataSize:      dataChunk.Size,
		Chunks:        []ChunkInfo{fmtChunk, dataChunk},
	}

	if chunk.Extensible != nil {
		header.ValidBitsPerSample = chunk.Extensible.ValidBitsPerSample
	}

	return chunk, header, nil
}

// appendSamples appends the little-endian encoding of samples to dst.
func appendSamples[T Sample](dst []byte, samples []T) ([]byte, error) {
	le := binary.LittleEndian

	switch s := any(samples).(type) {
	case []int16:
		for _, v := range s {
			dst = le.AppendUint16(dst, uint16(v))
		}
	case []Int24:
		for i, v := range s {
			if v < MinInt24 || v > MaxInt24 {
				return nil, fmt.Errorf("%w: sample %d is %d, 24-bit range is [%d, %d]", ErrSampleOutOfRange, i, v, MinInt24, MaxInt24)
			}

			dst = append(dst, byte(v), byte(v>>8), byte(v>>16))
		}
	case []int32:
		for _, v := range s {
			dst = le.AppendUint32(dst, uint32(v))
		}
	case []float32:
		for _, v := range s {
			dst = le.AppendUint32(dst, math.Float32bits(v))
		}
	case []float64:
		for _, v := range s {
			dst = le.AppendUint64(dst, math.Float64bits(v))
		}
	}

	return dst, nil
}
