// This tool converts a wav file into an aiff file and stores it in the same
// folder as the source unless -output is set.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wavers"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)
	flagSet.SetOutput(out)

	flagPath := flagSet.String("path", "", "The path to the wav file to convert to aiff")
	flagOutput := flagSet.String("output", "", "The aiff file to write, defaults to the source path with an .aif extension")
	flagBits := flagSet.Int("bits", 24, "bit depth of the aiff file when the source stores floats (16, 24 or 32)")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if *flagPath == "" {
		return fmt.Errorf("you must set the -path flag")
	}

	sourcePath, err := expandHome(*flagPath)
	if err != nil {
		return err
	}

	outPath := *flagOutput
	if outPath == "" {
		outPath = sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"
	}

	spec, err := wavers.ReadSpec(sourcePath)
	if err != nil {
		return err
	}

	bitDepth := spec.Encoding.BitsPerSample()
	if spec.Encoding.IsFloat() {
		bitDepth = *flagBits
	}

	buf, err := readIntBuffer(sourcePath, bitDepth)
	if err != nil {
		return err
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile, spec.SampleRate, bitDepth, spec.NumChannels)
	if err := encoder.Write(buf); err != nil {
		return err
	}

	if err := encoder.Close(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wav file converted to %s\n", outPath)

	return nil
}

// readIntBuffer decodes the wav file into integers of the given bit depth,
// scaling float sources to the PCM range.
func readIntBuffer(path string, bitDepth int) (*audio.IntBuffer, error) {
	switch bitDepth {
	case 16:
		return intBuffer[int16](path)
	case 24:
		return intBuffer[wavers.Int24](path)
	case 32:
		return intBuffer[int32](path)
	}

	return nil, fmt.Errorf("%w: aiff output can't use %d-bit samples", wavers.ErrUnsupportedEncoding, bitDepth)
}

func intBuffer[T wavers.Sample](path string) (*audio.IntBuffer, error) {
	sig, sampleRate, err := wavers.Read[T](path)
	if err != nil {
		return nil, err
	}

	return sig.PCMBuffer(sampleRate).AsIntBuffer(), nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return strings.Replace(path, "~", usr.HomeDir, 1), nil
}
