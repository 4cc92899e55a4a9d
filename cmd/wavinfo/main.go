// This tool prints the format of the passed wav files. Only the header is
// read unless -levels is set.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/cwbudde/wavers"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const missingPathMessage = "You must pass the path of at least one wav file"

var errMissingPath = errors.New("missing path argument")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavinfo", flag.ContinueOnError)
	flagSet.SetOutput(out)

	listChunks := flagSet.Bool("chunks", false, "list the chunks found before the sample data")
	showLevels := flagSet.Bool("levels", false, "decode the samples and print the peak and RMS level of every channel")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}

	for _, path := range flagSet.Args() {
		header, err := wavers.ReadHeader(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		fmt.Fprintf(out, "%s: %s\n", path, header.Spec())
		fmt.Fprintf(out, "\tformat tag 0x%04X, block align %d, %d bytes/sec\n", header.FormatTag, header.BlockAlign, header.ByteRate)

		if header.Extensible {
			fmt.Fprintf(out, "\textensible: %d valid bits, channel mask 0x%X\n", header.ValidBitsPerSample, header.ChannelMask)
		}

		if *listChunks {
			for _, c := range header.Chunks {
				fmt.Fprintf(out, "\tchunk %s\n", c)
			}
		}

		if *showLevels {
			sig, _, err := wavers.Read[float64](path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			for ch, l := range channelLevels(sig.Matrix()) {
				fmt.Fprintf(out, "\tchannel %d: peak %.4f, rms %.4f\n", ch, l.peak, l.rms)
			}
		}
	}

	return nil
}

type level struct {
	peak float64
	rms  float64
}

// channelLevels measures every column of a frames x channels matrix of
// normalised samples.
func channelLevels(m *mat.Dense) []level {
	if m == nil {
		return nil
	}

	rows, cols := m.Dims()
	col := make([]float64, rows)
	out := make([]level, cols)

	for j := range out {
		mat.Col(col, j, m)
		out[j] = level{
			peak: math.Max(floats.Max(col), -floats.Min(col)),
			rms:  floats.Norm(col, 2) / math.Sqrt(float64(rows)),
		}
	}

	return out
}
