package wavers

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

const (
	riffHeaderSize  = 12
	chunkHeaderSize = 8
	// cb_size is a u16, so no valid fmt chunk is larger than this.
	maxFmtChunkSize = 18 + 0xFFFF
)

// chunkLayout is what the scanner found: the fmt body (fmt chunks are tiny
// and always needed), where the data chunk lives, and every chunk seen.
type chunkLayout struct {
	base     int64
	fmtBody  []byte
	fmt      ChunkInfo
	data     ChunkInfo
	chunks   []ChunkInfo
	fileSize int64
}

// scanChunks walks the RIFF container starting at the current position of r
// until it located both the fmt and data chunks. Other chunks are skipped by
// seeking past their declared size, their content is never read, and the
// data payload is never read either.
func scanChunks(r io.ReadSeeker) (*chunkLayout, error) {
	base, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, ioFailure("locate RIFF start", err)
	}

	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, ioFailure("seek to end", err)
	}

	if _, err := r.Seek(base, io.SeekStart); err != nil {
		return nil, ioFailure("seek to RIFF start", err)
	}

	layout := &chunkLayout{base: base, fileSize: end - base}
	if layout.fileSize < riffHeaderSize {
		return nil, malformed("truncated RIFF header, %d bytes", layout.fileSize)
	}

	parser := riff.New(r)

	id, _, err := parser.IDnSize()
	if err != nil {
		return nil, headerReadError("RIFF header", err)
	}

	if id != riff.RiffID {
		return nil, malformed("expected RIFF magic %q, found %q", riff.RiffID[:], id[:])
	}

	var format [4]byte
	if err := binary.Read(r, binary.BigEndian, &format); err != nil {
		return nil, headerReadError("RIFF form type", err)
	}

	if format != riff.WavFormatID {
		return nil, malformed("expected RIFF form type %q, found %q", riff.WavFormatID[:], format[:])
	}

	var haveFmt, haveData bool

	pos := int64(riffHeaderSize)

	for {
		id, size, err := parser.IDnSize()
		if err != nil {
			// trailing bytes shorter than a chunk header end the container.
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}

			return nil, ioFailure("read chunk header", err)
		}

		// IDnSize reports a missing size field as a zero size.
		if pos+chunkHeaderSize > layout.fileSize {
			return nil, malformed("truncated chunk header at offset %d", pos)
		}

		chunk := ChunkInfo{ID: id, Offset: pos + chunkHeaderSize, Size: size}
		layout.chunks = append(layout.chunks, chunk)

		switch id {
		case riff.FmtID:
			if haveFmt {
				return nil, malformed("duplicate %q chunk at offset %d", id[:], pos)
			}

			if err := layout.checkBounds(chunk); err != nil {
				return nil, err
			}

			if size > maxFmtChunkSize {
				return nil, malformed("%q chunk declares %d bytes, at most %d expected", id[:], size, maxFmtChunkSize)
			}

			layout.fmtBody = make([]byte, size)
			if _, err := io.ReadFull(r, layout.fmtBody); err != nil {
				return nil, headerReadError("fmt chunk body", err)
			}

			layout.fmt = chunk
			haveFmt = true
		case riff.DataFormatID:
			if haveData {
				return nil, malformed("duplicate %q chunk at offset %d", id[:], pos)
			}

			layout.data = chunk
			haveData = true

			if haveFmt {
				return layout, nil
			}

			// fmt follows data, so the payload has to be skipped.
			if err := layout.checkBounds(chunk); err != nil {
				return nil, err
			}
		default:
			if err := layout.checkBounds(chunk); err != nil {
				return nil, err
			}
		}

		if haveFmt && haveData {
			return layout, nil
		}

		pos = chunk.Offset + chunk.PaddedSize()
		if _, err := r.Seek(base+pos, io.SeekStart); err != nil {
			return nil, ioFailure(fmt.Sprintf("skip %q chunk", id[:]), err)
		}
	}

	if !haveFmt {
		return nil, malformed("missing %q chunk", riff.FmtID[:])
	}

	return nil, malformed("missing %q chunk", riff.DataFormatID[:])
}

// checkBounds rejects chunks whose declared body runs past the end of the
// file. A missing trailing pad byte is tolerated.
func (l *chunkLayout) checkBounds(chunk ChunkInfo) error {
	available := l.fileSize - chunk.Offset
	if available < 0 {
		available = 0
	}

	if int64(chunk.Size) > available {
		return malformed("%q chunk at offset %d declares %d bytes, only %d available", chunk.ID[:], chunk.Offset-chunkHeaderSize, chunk.Size, available)
	}

	return nil
}

func headerReadError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return malformed("truncated %s", what)
	}

	return ioFailure("read "+what, err)
}
