package wavers

import (
	"fmt"

	"github.com/go-audio/audio"
	"gonum.org/v1/gonum/mat"
)

// Signal is a frame-major (frames x channels) buffer of samples of type T.
// All channels of frame i are stored before frame i+1, the same interleaving
// used in the data chunk.
type Signal[T Sample] struct {
	data     []T
	channels int
}

// NewSignal lays out data as frames of numChannels samples. The signal takes
// ownership of data, no copy is made.
func NewSignal[T Sample](data []T, numChannels int) (*Signal[T], error) {
	if numChannels <= 0 {
		return nil, fmt.Errorf("%w: channel count must be positive, got %d", ErrShapeMismatch, numChannels)
	}

	if len(data)%numChannels != 0 {
		return nil, fmt.Errorf("%w: %d samples is not a multiple of %d channels", ErrShapeMismatch, len(data), numChannels)
	}

	return &Signal[T]{data: data, channels: numChannels}, nil
}

// SignalFromFrames copies rows of samples, one row per frame, into a new
// signal. Every row must have the same, non-zero length.
func SignalFromFrames[T Sample](frames [][]T) (*Signal[T], error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames to infer the channel count from", ErrShapeMismatch)
	}

	numChannels := len(frames[0])
	if numChannels == 0 {
		return nil, fmt.Errorf("%w: frame 0 is empty", ErrShapeMismatch)
	}

	data := make([]T, 0, len(frames)*numChannels)

	for i, frame := range frames {
		if len(frame) != numChannels {
			return nil, fmt.Errorf("%w: frame %d has %d samples, expected %d", ErrShapeMismatch, i, len(frame), numChannels)
		}

		data = append(data, frame...)
	}

	return &Signal[T]{data: data, channels: numChannels}, nil
}

// SampleType returns the encoding of the signal's samples.
func (s *Signal[T]) SampleType() SampleType {
	return SampleTypeOf[T]()
}

// Samples returns the interleaved samples. The slice is shared with the signal.
func (s *Signal[T]) Samples() []T {
	if s == nil {
		return nil
	}

	return s.data
}

// NumChannels returns the number of channels per frame.
func (s *Signal[T]) NumChannels() int {
	if s == nil {
		return 0
	}

	return s.channels
}

// NumFrames returns the number of frames.
func (s *Signal[T]) NumFrames() int {
	if s == nil || s.channels == 0 {
		return 0
	}

	return len(s.data) / s.channels
}

// Frame returns the samples of frame i, sharing storage with the signal.
func (s *Signal[T]) Frame(i int) []T {
	return s.data[i*s.channels : (i+1)*s.channels : (i+1)*s.channels]
}

// At returns the sample of channel ch in frame i.
func (s *Signal[T]) At(i, ch int) T {
	if ch < 0 || ch >= s.channels {
		panic(fmt.Sprintf("wavers: channel %d out of range [0, %d)", ch, s.channels))
	}

	return s.data[i*s.channels+ch]
}

// Channel returns a copy of a single channel.
func (s *Signal[T]) Channel(ch int) []T {
	if ch < 0 || ch >= s.channels {
		panic(fmt.Sprintf("wavers: channel %d out of range [0, %d)", ch, s.channels))
	}

	out := make([]T, s.NumFrames())
	for i := range out {
		out[i] = s.data[i*s.channels+ch]
	}

	return out
}

// Frames returns the signal as one row per frame. The rows share storage
// with the signal.
func (s *Signal[T]) Frames() [][]T {
	out := make([][]T, s.NumFrames())
	for i := range out {
		out[i] = s.Frame(i)
	}

	return out
}

// Equal reports whether both signals have the same shape and samples.
func (s *Signal[T]) Equal(other *Signal[T]) bool {
	if s == nil || other == nil {
		return s == other
	}

	if s.channels != other.channels || len(s.data) != len(other.data) {
		return false
	}

	for i := range s.data {
		if s.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// Matrix returns the signal as a frames x channels dense matrix of the raw
// sample values (not normalised). Float64 signals share their storage with
// the matrix, other types are copied. It returns nil for an empty signal.
func (s *Signal[T]) Matrix() *mat.Dense {
	if s.NumFrames() == 0 {
		return nil
	}

	if d, ok := any(s.data).([]float64); ok {
		return mat.NewDense(s.NumFrames(), s.channels, d)
	}

	values := make([]float64, len(s.data))
	for i, v := range s.data {
		values[i] = float64(v)
	}

	return mat.NewDense(s.NumFrames(), s.channels, values)
}

// PCMBuffer exposes the signal as a go-audio PCM buffer. Int24 samples are
// carried in the 32-bit slot with SourceBitDepth set to 24, all other types
// share storage with the signal.
func (s *Signal[T]) PCMBuffer(sampleRate int) *audio.PCMBuffer {
	st := s.SampleType()
	buf := &audio.PCMBuffer{
		Format: &audio.Format{
			NumChannels: s.channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: uint8(st.BitsPerSample()),
	}

	switch d := any(s.data).(type) {
	case []int16:
		buf.DataType = audio.DataTypeI16
		buf.I16 = d
	case []Int24:
		buf.DataType = audio.DataTypeI32
		buf.I32 = make([]int32, len(d))
		for i, v := range d {
			buf.I32[i] = int32(v)
		}
	case []int32:
		buf.DataType = audio.DataTypeI32
		buf.I32 = d
	case []float32:
		buf.DataType = audio.DataTypeF32
		buf.F32 = d
	case []float64:
		buf.DataType = audio.DataTypeF64
		buf.F64 = d
	}

	return buf
}
