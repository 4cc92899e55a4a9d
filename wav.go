package wavers

import (
	"fmt"
	"math"
	"time"
)

func framesDuration(frames uint64, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}

	secs := float64(frames) / float64(sampleRate)
	if secs >= math.MaxInt64/float64(time.Second) {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(math.Round(secs * float64(time.Second)))
}

func paddedLen(n int64) int64 {
	return n + n%2
}

// bufferLen converts an encoded size to a buffer length, rejecting sizes
// above limit (math.MaxInt for in-memory buffers).
func bufferLen(n, limit int64) (int, error) {
	if n > limit {
		return 0, fmt.Errorf("%w: %d bytes don't fit in memory", ErrSignalTooLarge, n)
	}

	return int(n), nil
}
