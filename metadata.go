package wavers

import (
	"fmt"
	"io"
	"time"
)

// WavSpec is a read-only metadata snapshot of a WAV file.
type WavSpec struct {
	SampleRate  int
	NumChannels int
	// Duration is the number of frames, not wall-clock time. See Length.
	Duration uint64
	// Encoding is the sample type stored on disk.
	Encoding SampleType
}

// Length returns the play time of the file.
func (s WavSpec) Length() time.Duration {
	return framesDuration(s.Duration, s.SampleRate)
}

func (s WavSpec) String() string {
	return fmt.Sprintf("%d Hz, %d channel(s), %d frames (%s), %s",
		s.SampleRate, s.NumChannels, s.Duration, s.Length(), s.Encoding)
}

// ReadSpecFrom extracts the metadata of a WAV stream from its header alone.
// The data chunk payload is never read, so the cost doesn't depend on the
// size of the file.
func ReadSpecFrom(r io.ReadSeeker) (WavSpec, error) {
	return NewDecoder(r).Spec()
}
