package wavers

import (
	"bytes"
	"encoding/binary"
)

const (
	fmtChunkSizeClassic    = 16
	fmtChunkSizeExtensible = 40
	fmtExtensionSize       = 22
)

// ksDataFormatTail is the trailing 14 bytes shared by every
// KSDATAFORMAT_SUBTYPE_* GUID; the leading two bytes carry the format tag.
var ksDataFormatTail = [14]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// formatChunk is the parsed fmt chunk.
type formatChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	Extensible     *formatExtension
}

// formatExtension stores WAVE_FORMAT_EXTENSIBLE extra fields.
type formatExtension struct {
	ValidBitsPerSample uint16
	ChannelMask        uint32
	SubFormat          [16]byte
}

// effectiveFormatTag returns the format tag carried by the sub-format GUID
// for extensible chunks, the top-level tag otherwise.
func (f *formatChunk) effectiveFormatTag() uint16 {
	if f == nil {
		return 0
	}

	if f.FormatTag == wavFormatExtensible && f.Extensible != nil {
		return binary.LittleEndian.Uint16(f.Extensible.SubFormat[:2])
	}

	return f.FormatTag
}

func makeSubFormatGUID(formatTag uint16) [16]byte {
	var guid [16]byte
	binary.LittleEndian.PutUint16(guid[:2], formatTag)
	copy(guid[2:], ksDataFormatTail[:])

	return guid
}

// parseFmtChunk decodes the classic 16/18 byte layout and the 40 byte
// extensible layout.
func parseFmtChunk(body []byte) (*formatChunk, error) {
	if len(body) < fmtChunkSizeClassic {
		return nil, malformed("fmt chunk is %d bytes, at least %d expected", len(body), fmtChunkSizeClassic)
	}

	le := binary.LittleEndian
	chunk := &formatChunk{
		FormatTag:      le.Uint16(body[0:2]),
		NumChannels:    le.Uint16(body[2:4]),
		SampleRate:     le.Uint32(body[4:8]),
		AvgBytesPerSec: le.Uint32(body[8:12]),
		BlockAlign:     le.Uint16(body[12:14]),
		BitsPerSample:  le.Uint16(body[14:16]),
	}

	if chunk.FormatTag != wavFormatExtensible {
		return chunk, nil
	}

	if len(body) < fmtChunkSizeExtensible {
		return nil, malformed("extensible fmt chunk is %d bytes, %d expected", len(body), fmtChunkSizeExtensible)
	}

	if cbSize := le.Uint16(body[16:18]); cbSize < fmtExtensionSize {
		return nil, malformed("extensible fmt chunk declares cb_size %d, at least %d expected", cbSize, fmtExtensionSize)
	}

	ext := &formatExtension{
		ValidBitsPerSample: le.Uint16(body[18:20]),
		ChannelMask:        le.Uint32(body[20:24]),
	}
	copy(ext.SubFormat[:], body[24:40])
	chunk.Extensible = ext

	return chunk, nil
}

// marshalFmtChunk returns the full fmt chunk, header included.
func marshalFmtChunk(f *formatChunk) []byte {
	size := uint32(fmtChunkSizeClassic)
	if f.Extensible != nil {
		size = fmtChunkSizeExtensible
	}

	buf := make([]byte, 0, chunkHeaderSize+size)
	buf = append(buf, 'f', 'm', 't', ' ')
	buf = binary.LittleEndian.AppendUint32(buf, size)
	buf = binary.LittleEndian.AppendUint16(buf, f.FormatTag)
	buf = binary.LittleEndian.AppendUint16(buf, f.NumChannels)
	buf = binary.LittleEndian.AppendUint32(buf, f.SampleRate)
	buf = binary.LittleEndian.AppendUint32(buf, f.AvgBytesPerSec)
	buf = binary.LittleEndian.AppendUint16(buf, f.BlockAlign)
	buf = binary.LittleEndian.AppendUint16(buf, f.BitsPerSample)

	if f.Extensible == nil {
		return buf
	}

	buf = binary.LittleEndian.AppendUint16(buf, fmtExtensionSize)
	buf = binary.LittleEndian.AppendUint16(buf, f.Extensible.ValidBitsPerSample)
	buf = binary.LittleEndian.AppendUint32(buf, f.Extensible.ChannelMask)

	return append(buf, f.Extensible.SubFormat[:]...)
}

// resolveEncoding maps the chunk to one of the supported sample types.
func (f *formatChunk) resolveEncoding() (SampleType, error) {
	if f.Extensible != nil && !bytes.Equal(f.Extensible.SubFormat[2:], ksDataFormatTail[:]) {
		return SampleUnknown, unsupportedSubFormat(f.Extensible.SubFormat)
	}

	return sampleTypeFor(f.effectiveFormatTag(), f.BitsPerSample)
}
