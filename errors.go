package wavers

import (
	"errors"
	"fmt"
)

var (
	// ErrIOFailure wraps failures of the underlying file or stream. The
	// original cause is wrapped as well and can be matched with errors.Is.
	ErrIOFailure = errors.New("wav i/o failure")
	// ErrMalformedHeader is returned when the RIFF container, the fmt chunk or
	// the data chunk is missing, invalid or inconsistent.
	ErrMalformedHeader = errors.New("malformed wav header")
	// ErrUnsupportedEncoding is returned for format tags and bit depths outside
	// of 16/24/32-bit integer PCM and 32/64-bit IEEE float.
	ErrUnsupportedEncoding = errors.New("unsupported wav encoding")
	// ErrIncompleteFrame is returned by the encoder when the number of samples
	// is not a multiple of the channel count.
	ErrIncompleteFrame = errors.New("incomplete frame")
	// ErrShapeMismatch is returned when a flat sample sequence can't be laid
	// out as frames x channels.
	ErrShapeMismatch = errors.New("signal shape mismatch")
	// ErrInvalidSampleRate is returned when encoding with a sample rate that
	// can't be stored in a fmt chunk.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	// ErrSampleOutOfRange is returned when a 24-bit sample doesn't fit in 3 bytes.
	ErrSampleOutOfRange = errors.New("sample out of range")
	// ErrSignalTooLarge is returned when the encoded data can't be described by
	// the 32-bit RIFF size fields.
	ErrSignalTooLarge = errors.New("signal too large for a RIFF container")
)

func ioFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIOFailure, op, err)
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedHeader, fmt.Sprintf(format, args...))
}
