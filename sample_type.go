package wavers

import (
	"fmt"
	"strings"
)

const (
	wavFormatPCM        = 1
	wavFormatIEEEFloat  = 3
	wavFormatExtensible = 0xFFFE
)

// Int24 is a signed 24-bit sample held in the low 24 bits of an int32.
// Valid values are in [-8388608, 8388607].
type Int24 int32

const (
	// MinInt24 is the most negative 24-bit sample.
	MinInt24 Int24 = -1 << 23
	// MaxInt24 is the most positive 24-bit sample.
	MaxInt24 Int24 = 1<<23 - 1
)

// Sample is the closed set of in-memory sample types, one per supported
// on-disk encoding.
type Sample interface {
	int16 | Int24 | int32 | float32 | float64
}

// SampleType identifies one of the five supported sample encodings.
type SampleType uint8

const (
	SampleUnknown SampleType = iota
	SampleInt16
	SampleInt24
	SampleInt32
	SampleFloat32
	SampleFloat64
)

// SampleTypes lists every supported encoding.
var SampleTypes = []SampleType{SampleInt16, SampleInt24, SampleInt32, SampleFloat32, SampleFloat64}

// SampleTypeOf returns the encoding matching the Go element type T.
func SampleTypeOf[T Sample]() SampleType {
	var zero T

	switch any(zero).(type) {
	case int16:
		return SampleInt16
	case Int24:
		return SampleInt24
	case int32:
		return SampleInt32
	case float32:
		return SampleFloat32
	case float64:
		return SampleFloat64
	}

	return SampleUnknown
}

// ParseSampleType parses the names returned by SampleType.String.
func ParseSampleType(name string) (SampleType, error) {
	for _, st := range SampleTypes {
		if strings.EqualFold(name, st.String()) {
			return st, nil
		}
	}

	return SampleUnknown, fmt.Errorf("%w: unknown sample type %q", ErrUnsupportedEncoding, name)
}

func (st SampleType) String() string {
	switch st {
	case SampleInt16:
		return "int16"
	case SampleInt24:
		return "int24"
	case SampleInt32:
		return "int32"
	case SampleFloat32:
		return "float32"
	case SampleFloat64:
		return "float64"
	default:
		return fmt.Sprintf("SampleType(%d)", uint8(st))
	}
}

// BitsPerSample returns the container width in bits.
func (st SampleType) BitsPerSample() int {
	switch st {
	case SampleInt16:
		return 16
	case SampleInt24:
		return 24
	case SampleInt32, SampleFloat32:
		return 32
	case SampleFloat64:
		return 64
	default:
		return 0
	}
}

// BytesPerSample returns the on-disk width of one sample.
func (st SampleType) BytesPerSample() int {
	return st.BitsPerSample() / 8
}

// IsFloat reports whether st is an IEEE float encoding.
func (st SampleType) IsFloat() bool {
	return st == SampleFloat32 || st == SampleFloat64
}

// FormatTag returns the fmt chunk format tag used to store st.
func (st SampleType) FormatTag() uint16 {
	if st.IsFloat() {
		return wavFormatIEEEFloat
	}

	return wavFormatPCM
}

// fullScale is the integer magnitude mapped to 1.0 in float space.
func (st SampleType) fullScale() float64 {
	return float64(int64(1) << (st.BitsPerSample() - 1))
}

// sampleTypeFor resolves a format tag and bit depth to an encoding.
func sampleTypeFor(formatTag uint16, bitsPerSample uint16) (SampleType, error) {
	switch formatTag {
	case wavFormatPCM:
		switch bitsPerSample {
		case 16:
			return SampleInt16, nil
		case 24:
			return SampleInt24, nil
		case 32:
			return SampleInt32, nil
		}
	case wavFormatIEEEFloat:
		switch bitsPerSample {
		case 32:
			return SampleFloat32, nil
		case 64:
			return SampleFloat64, nil
		}
	default:
		return SampleUnknown, fmt.Errorf("%w: %s (format tag 0x%04X)", ErrUnsupportedEncoding, formatTagName(formatTag), formatTag)
	}

	return SampleUnknown, fmt.Errorf("%w: %d-bit %s", ErrUnsupportedEncoding, bitsPerSample, formatTagName(formatTag))
}

func formatTagName(formatTag uint16) string {
	switch formatTag {
	case wavFormatPCM:
		return "PCM"
	case 2:
		return "Microsoft ADPCM"
	case wavFormatIEEEFloat:
		return "IEEE float"
	case 6:
		return "A-law"
	case 7:
		return "mu-law"
	case 0x11:
		return "IMA ADPCM"
	case 0x22:
		return "TrueSpeech"
	case 0x31:
		return "GSM 6.10"
	case 0x55:
		return "MPEG layer 3"
	case 0x181C:
		return "Voxware"
	case wavFormatExtensible:
		return "extensible"
	default:
		return "unknown format"
	}
}

func unsupportedSubFormat(guid [16]byte) error {
	return fmt.Errorf("%w: extensible sub-format GUID %X", ErrUnsupportedEncoding, guid[:])
}
