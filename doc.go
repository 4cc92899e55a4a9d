// Package wavers reads and writes WAV (RIFF/WAVE) files as two-dimensional,
// frame-major sample buffers.
//
// Five sample encodings are supported, each with its own Go element type:
//
//   - 16-bit integer PCM: int16
//   - 24-bit integer PCM: Int24
//   - 32-bit integer PCM: int32
//   - 32-bit IEEE float: float32
//   - 64-bit IEEE float: float64
//
// Files can be decoded as any of the five types regardless of the encoding
// stored on disk. Integer widths are rescaled by powers of two and integer
// full scale maps to [-1.0, 1.0) in float:
//
//	sig, sampleRate, err := wavers.Read[float32]("in.wav")
//
// Writing always stores the signal's own type; use Convert or WriteAs to
// store another one:
//
//	err = wavers.WriteAs[int16]("out.wav", sig, sampleRate)
//
// Metadata is extracted from the header alone, without reading samples:
//
//	spec, err := wavers.ReadSpec("in.wav")
//
// Both classic and WAVE_FORMAT_EXTENSIBLE fmt chunks are understood, and
// ancillary chunks such as fact, LIST or PEAK are skipped. Compressed
// encodings (ADPCM, A-law, mu-law, ...) are rejected with
// ErrUnsupportedEncoding.
package wavers
