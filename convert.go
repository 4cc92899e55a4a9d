package wavers

import (
	"math"

	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// converter holds the per-value rule from one source encoding to T.
// Integer sources arrive sign extended in an int64, float sources widened to
// float64. postScale is applied to the whole output after the per-value pass
// (int -> float), 0 means none.
type converter[T Sample] struct {
	fromInt   func(int64) T
	fromFloat func(float64) T
	postScale float64
}

func newConverter[T Sample](from SampleType) converter[T] {
	to := SampleTypeOf[T]()

	var c converter[T]

	if from.IsFloat() {
		if to.IsFloat() {
			c.fromFloat = func(v float64) T { return T(v) }
			return c
		}

		full := to.fullScale()
		c.fromFloat = func(v float64) T { return T(floatToPCM(v, full)) }

		return c
	}

	fromBits, toBits := from.BitsPerSample(), to.BitsPerSample()

	switch {
	case to.IsFloat():
		// the scale is a power of two so scaling after the integer to float
		// conversion rounds exactly once.
		c.fromInt = func(v int64) T { return T(v) }
		c.postScale = 1 / from.fullScale()
	case toBits >= fromBits:
		shift := uint(toBits - fromBits)
		c.fromInt = func(v int64) T { return T(v << shift) }
	default:
		div := int64(1) << uint(fromBits-toBits)
		// Go's integer division truncates toward zero.
		c.fromInt = func(v int64) T { return T(v / div) }
	}

	return c
}

func (c converter[T]) finish(dst []T) {
	if c.postScale == 0 || len(dst) == 0 {
		return
	}

	switch d := any(dst).(type) {
	case []float32:
		f32.Scale(d, d, float32(c.postScale))
	case []float64:
		f64.Scale(d, d, c.postScale)
	}
}

// floatToPCM maps [-1.0, 1.0) onto the signed integer range of the given full
// scale, rounding to nearest and clamping. NaN maps to silence.
func floatToPCM(value, full float64) int64 {
	if math.IsNaN(value) {
		return 0
	}

	scaled := math.Round(value * full)

	if scaled > full-1 {
		return int64(full - 1)
	}

	if scaled < -full {
		return int64(-full)
	}

	return int64(scaled)
}

// ConvertSamples converts a flat sequence between sample types using the
// range-normalised rules shared with decoding: integer widths are scaled by
// powers of two, integers map to floats by dividing by 2^(bits-1), floats map
// to integers by multiplying, rounding and clamping.
func ConvertSamples[D, S Sample](src []S) []D {
	from := SampleTypeOf[S]()
	conv := newConverter[D](from)
	out := make([]D, len(src))

	if from.IsFloat() {
		for i, v := range src {
			out[i] = conv.fromFloat(float64(v))
		}
	} else {
		for i, v := range src {
			out[i] = conv.fromInt(int64(v))
		}
	}

	conv.finish(out)

	return out
}

// Convert returns a new signal holding the samples of sig converted to D.
// The channel layout is preserved.
func Convert[D, S Sample](sig *Signal[S]) *Signal[D] {
	if sig == nil {
		return nil
	}

	return &Signal[D]{
		data:     ConvertSamples[D](sig.data),
		channels: sig.channels,
	}
}
