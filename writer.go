package wavers

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-audio/riff"
)

// EncodeBytes encodes sig into a complete WAV file held in memory. All size
// fields are computed before the first byte is emitted.
func EncodeBytes[T Sample](sig *Signal[T], sampleRate int) ([]byte, error) {
	chunk, header, err := planEncoding(sig, sampleRate)
	if err != nil {
		return nil, err
	}

	total, err := bufferLen(header.DataOffset+paddedLen(int64(header.DataSize)), math.MaxInt)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, total)
	buf = append(buf, riff.RiffID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(total-chunkHeaderSize))
	buf = append(buf, riff.WavFormatID[:]...)
	buf = append(buf, marshalFmtChunk(chunk)...)
	buf = append(buf, riff.DataFormatID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, header.DataSize)

	buf, err = appendSamples(buf, sig.data)
	if err != nil {
		return nil, err
	}

	if header.DataSize%2 == 1 {
		buf = append(buf, 0)
	}

	if len(buf) != total {
		return nil, fmt.Errorf("wavers: encoded %d bytes but the RIFF header declares %d", len(buf), total)
	}

	return buf, nil
}

// Encode writes sig as a WAV file to w in a single write.
func Encode[T Sample](w io.Writer, sig *Signal[T], sampleRate int) error {
	data, err := EncodeBytes(sig, sampleRate)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return ioFailure("write wav", err)
	}

	return nil
}

// Write encodes sig and publishes it at path. The file is written to a
// temporary sibling and renamed into place, so path never holds a partial
// file.
func Write[T Sample](path string, sig *Signal[T], sampleRate int) error {
	data, err := EncodeBytes(sig, sampleRate)
	if err != nil {
		return err
	}

	return writeFileAtomic(path, data)
}

// WriteAs converts sig to D before writing it, so the file is stored as D.
func WriteAs[D, S Sample](path string, sig *Signal[S], sampleRate int) error {
	if sig == nil {
		return fmt.Errorf("%w: nil signal", ErrShapeMismatch)
	}

	return Write(path, Convert[D](sig), sampleRate)
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return ioFailure("create temporary file", err)
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return ioFailure("write "+tmp.Name(), err)
	}

	if err = tmp.Chmod(0o644); err != nil {
		return ioFailure("chmod "+tmp.Name(), err)
	}

	if err = tmp.Sync(); err != nil {
		return ioFailure("sync "+tmp.Name(), err)
	}

	if err = tmp.Close(); err != nil {
		return ioFailure("close "+tmp.Name(), err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return ioFailure("publish "+path, err)
	}

	return nil
}
