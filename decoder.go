package wavers

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/go-audio/audio"
)

var errNilReader = errors.New("can't decode from a nil reader")

// Decoder reads WAV content from a seekable stream. The RIFF header is
// expected at the stream's position when the decoder is first used.
type Decoder struct {
	r      io.ReadSeeker
	layout *chunkLayout
	header *WavHeader
	err    error
}

// NewDecoder creates a decoder for the passed wav reader.
func NewDecoder(r io.ReadSeeker) *Decoder {
	return &Decoder{r: r}
}

// Header parses the container up to the data chunk and returns a copy of the
// resulting header. Sample data is not read.
func (d *Decoder) Header() (*WavHeader, error) {
	if err := d.readHeader(); err != nil {
		return nil, err
	}

	return d.header.Clone(), nil
}

// Spec returns the metadata snapshot of the stream without reading samples.
func (d *Decoder) Spec() (WavSpec, error) {
	if err := d.readHeader(); err != nil {
		return WavSpec{}, err
	}

	return d.header.Spec(), nil
}

// readHeader is safe to call multiple times.
func (d *Decoder) readHeader() error {
	if d == nil || d.r == nil {
		return errNilReader
	}

	if d.header != nil || d.err != nil {
		return d.err
	}

	layout, err := scanChunks(d.r)
	if err != nil {
		d.err = err
		return err
	}

	header, err := resolveHeader(layout)
	if err != nil {
		d.err = err
		return err
	}

	d.layout = layout
	d.header = header

	return nil
}

// readData returns the raw data chunk payload, without its pad byte.
func (d *Decoder) readData() ([]byte, error) {
	if err := d.layout.checkBounds(d.layout.data); err != nil {
		return nil, err
	}

	if _, err := d.r.Seek(d.layout.base+d.header.DataOffset, io.SeekStart); err != nil {
		return nil, ioFailure("seek to data chunk", err)
	}

	raw := make([]byte, d.header.DataSize)
	// the bounds were checked, so a short read here is a failing stream.
	if _, err := io.ReadFull(d.r, raw); err != nil {
		return nil, ioFailure("read data chunk", err)
	}

	return raw, nil
}

// DecodeAs decodes the whole data chunk, converting every sample from the
// on-disk encoding to T.
func DecodeAs[T Sample](d *Decoder) (*Signal[T], error) {
	if err := d.readHeader(); err != nil {
		return nil, err
	}

	raw, err := d.readData()
	if err != nil {
		return nil, err
	}

	return NewSignal(decodeSamples[T](d.header.Encoding, raw), int(d.header.NumChannels))
}

// Decode reads a complete WAV stream as samples of type T and returns them
// with the sample rate.
func Decode[T Sample](r io.ReadSeeker) (*Signal[T], int, error) {
	d := NewDecoder(r)

	sig, err := DecodeAs[T](d)
	if err != nil {
		return nil, 0, err
	}

	return sig, int(d.header.SampleRate), nil
}

// decodeSamples reads little-endian samples of the on-disk encoding src and
// converts them to T. The conversion runs even when src matches T.
func decodeSamples[T Sample](src SampleType, raw []byte) []T {
	width := src.BytesPerSample()
	out := make([]T, len(raw)/width)
	conv := newConverter[T](src)
	le := binary.LittleEndian

	switch src {
	case SampleInt16:
		for i := range out {
			out[i] = conv.fromInt(int64(int16(le.Uint16(raw[i*2:]))))
		}
	case SampleInt24:
		for i := range out {
			out[i] = conv.fromInt(int64(audio.Int24LETo32(raw[i*3 : i*3+3])))
		}
	case SampleInt32:
		for i := range out {
			out[i] = conv.fromInt(int64(int32(le.Uint32(raw[i*4:]))))
		}
	case SampleFloat32:
		for i := range out {
			out[i] = conv.fromFloat(float64(math.Float32frombits(le.Uint32(raw[i*4:]))))
		}
	case SampleFloat64:
		for i := range out {
			out[i] = conv.fromFloat(math.Float64frombits(le.Uint64(raw[i*8:])))
		}
	}

	conv.finish(out)

	return out
}
