package wavers

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestFramesDuration(t *testing.T) {
	tests := []struct {
		name       string
		frames     uint64
		sampleRate int
		want       time.Duration
	}{
		{"one second", 44100, 44100, time.Second},
		{"no frames", 0, 48000, 0},
		{"zero rate", 100, 0, 0},
		{"negative rate", 100, -8000, 0},
		{"rounded", 1, 3, 333333333 * time.Nanosecond},
		{"saturates", math.MaxUint64, 1, time.Duration(math.MaxInt64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := framesDuration(tt.frames, tt.sampleRate); got != tt.want {
				t.Fatalf("framesDuration(%d, %d)=%s, want %s", tt.frames, tt.sampleRate, got, tt.want)
			}
		})
	}
}

func TestPaddedLen(t *testing.T) {
	for n, want := range map[int64]int64{0: 0, 1: 2, 2: 2, 9: 10, 44: 44} {
		if got := paddedLen(n); got != want {
			t.Fatalf("paddedLen(%d)=%d, want %d", n, got, want)
		}
	}
}

func TestBufferLen(t *testing.T) {
	n, err := bufferLen(54, math.MaxInt32)
	if err != nil || n != 54 {
		t.Fatalf("bufferLen(54)=%d, %v", n, err)
	}

	// a 4 GiB file on a platform with 32-bit ints.
	if _, err := bufferLen(math.MaxUint32+8, math.MaxInt32); !errors.Is(err, ErrSignalTooLarge) {
		t.Fatalf("expected ErrSignalTooLarge, got %v", err)
	}
}
