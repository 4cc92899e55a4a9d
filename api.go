package wavers

import "os"

// Read decodes the WAV file at path as samples of type T and returns them
// with the file's sample rate.
func Read[T Sample](path string) (*Signal[T], int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, ioFailure("open", err)
	}
	defer file.Close()

	return Decode[T](file)
}

// ReadHeader parses the header of the WAV file at path.
func ReadHeader(path string) (*WavHeader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ioFailure("open", err)
	}
	defer file.Close()

	return NewDecoder(file).Header()
}

// ReadSpec returns the metadata of the WAV file at path without reading its
// samples.
func ReadSpec(path string) (WavSpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return WavSpec{}, ioFailure("open", err)
	}
	defer file.Close()

	return ReadSpecFrom(file)
}

// Duration returns the number of frames of the WAV file at path.
func Duration(path string) (uint64, error) {
	spec, err := ReadSpec(path)
	if err != nil {
		return 0, err
	}

	return spec.Duration, nil
}

// Channels returns the channel count of the WAV file at path.
func Channels(path string) (int, error) {
	spec, err := ReadSpec(path)
	if err != nil {
		return 0, err
	}

	return spec.NumChannels, nil
}

// SampleRate returns the sample rate of the WAV file at path.
func SampleRate(path string) (int, error) {
	spec, err := ReadSpec(path)
	if err != nil {
		return 0, err
	}

	return spec.SampleRate, nil
}
