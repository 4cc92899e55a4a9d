// This tool rewrites a wav file with a different stored sample type.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wavers"
)

var errMissingPath = errors.New("missing path argument")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println("usage: wavconvert -type float32 [-output out.wav] in.wav")
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavconvert", flag.ContinueOnError)
	flagSet.SetOutput(out)

	sampleType := flagSet.String("type", "float32", "target sample type: int16, int24, int32, float32 or float64")
	output := flagSet.String("output", "", "destination file, defaults to the input name suffixed with the type")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() != 1 {
		return errMissingPath
	}

	st, err := wavers.ParseSampleType(*sampleType)
	if err != nil {
		return err
	}

	in := flagSet.Arg(0)

	dst := *output
	if dst == "" {
		dst = strings.TrimSuffix(in, filepath.Ext(in)) + "-" + st.String() + ".wav"
	}

	if dst == in {
		return fmt.Errorf("refusing to overwrite the source file %s", in)
	}

	src, err := wavers.ReadSpec(in)
	if err != nil {
		return err
	}

	switch st {
	case wavers.SampleInt16:
		err = convert[int16](in, dst)
	case wavers.SampleInt24:
		err = convert[wavers.Int24](in, dst)
	case wavers.SampleInt32:
		err = convert[int32](in, dst)
	case wavers.SampleFloat32:
		err = convert[float32](in, dst)
	case wavers.SampleFloat64:
		err = convert[float64](in, dst)
	}

	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s (%s) -> %s (%s)\n", in, src.Encoding, dst, st)

	return nil
}

// convert decodes straight into T, so the samples go through a single
// conversion.
func convert[T wavers.Sample](in, out string) error {
	sig, sampleRate, err := wavers.Read[T](in)
	if err != nil {
		return err
	}

	return wavers.Write(out, sig, sampleRate)
}
