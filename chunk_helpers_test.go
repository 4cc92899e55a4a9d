package wavers

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

type testChunk struct {
	id   string
	size uint32
	data []byte
	// pad overrides the pad byte written after odd-sized chunks.
	pad byte
}

func chunk(id string, data []byte) testChunk {
	return testChunk{id: id, size: uint32(len(data)), data: data}
}

var (
	errFileTooSmall         = errors.New("file too small")
	errInvalidRiffWaveHdr   = errors.New("invalid riff/wave header")
	errChunkExceedsFileSize = errors.New("chunk exceeds file size")
)

// buildWav assembles a RIFF/WAVE container from raw chunks. Declared sizes
// are taken from the chunks as-is so tests can lie about them.
func buildWav(chunks ...testChunk) []byte {
	return buildRiff("RIFF", "WAVE", chunks...)
}

func buildRiff(magic, form string, chunks ...testChunk) []byte {
	body := []byte(form)

	for _, ch := range chunks {
		body = append(body, ch.id...)
		body = binary.LittleEndian.AppendUint32(body, ch.size)
		body = append(body, ch.data...)

		if len(ch.data)%2 == 1 {
			body = append(body, ch.pad)
		}
	}

	out := []byte(magic)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))

	return append(out, body...)
}

func fmtBody(tag, channels uint16, sampleRate uint32, blockAlign, bits uint16) []byte {
	b := binary.LittleEndian.AppendUint16(nil, tag)
	b = binary.LittleEndian.AppendUint16(b, channels)
	b = binary.LittleEndian.AppendUint32(b, sampleRate)
	b = binary.LittleEndian.AppendUint32(b, sampleRate*uint32(blockAlign))
	b = binary.LittleEndian.AppendUint16(b, blockAlign)

	return binary.LittleEndian.AppendUint16(b, bits)
}

func pcmFmt(st SampleType, channels uint16, sampleRate uint32) []byte {
	return fmtBody(st.FormatTag(), channels, sampleRate, channels*uint16(st.BytesPerSample()), uint16(st.BitsPerSample()))
}

func extensibleFmt(subTag, channels uint16, sampleRate uint32, blockAlign, bits, validBits uint16, mask uint32) []byte {
	b := fmtBody(wavFormatExtensible, channels, sampleRate, blockAlign, bits)
	b = binary.LittleEndian.AppendUint16(b, fmtExtensionSize)
	b = binary.LittleEndian.AppendUint16(b, validBits)
	b = binary.LittleEndian.AppendUint32(b, mask)
	guid := makeSubFormatGUID(subTag)

	return append(b, guid[:]...)
}

func int16Bytes(samples ...int16) []byte {
	var b []byte
	for _, s := range samples {
		b = binary.LittleEndian.AppendUint16(b, uint16(s))
	}

	return b
}

func parseWavChunks(data []byte) ([]testChunk, error) {
	if len(data) < 12 {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	chunks := make([]testChunk, 0)

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8

		end := offset + int(size)
		if end > len(data) {
			return nil, fmt.Errorf("%w: %q", errChunkExceedsFileSize, id)
		}

		payload := append([]byte(nil), data[offset:end]...)
		chunks = append(chunks, testChunk{id: id, size: size, data: payload})

		offset = end
		if size%2 == 1 {
			offset++
		}
	}

	return chunks, nil
}

func parseWavChunksFromFile(path string) ([]testChunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return parseWavChunks(data)
}

func findChunk(chunks []testChunk, id string) (*testChunk, int) {
	for i := range chunks {
		if chunks[i].id == id {
			return &chunks[i], i
		}
	}

	return nil, -1
}
