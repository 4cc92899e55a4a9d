package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/wavers"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	sampleRate := flagSet.Int("rate", 48000, "sample rate in hertz")
	sampleType := flagSet.String("type", "int16", "stored sample type: int16, int24, int32, float32 or float64")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	st, err := wavers.ParseSampleType(*sampleType)
	if err != nil {
		return err
	}

	if *sampleRate <= 0 {
		return fmt.Errorf("%w: %d Hz", wavers.ErrInvalidSampleRate, *sampleRate)
	}

	log.Printf("generating a %f sec %s sine wav at %f hz", *length, st, *frequency)

	numSamples := int(float64(*sampleRate) * *length)
	data := make([]float64, numSamples)

	for i := range data {
		data[i] = math.Sin(float64(i) / float64(*sampleRate) * *frequency * 2 * math.Pi)
	}

	sig, err := wavers.NewSignal(data, 1)
	if err != nil {
		return err
	}

	return write(*output, st, sig, *sampleRate)
}

func write(path string, st wavers.SampleType, sig *wavers.Signal[float64], sampleRate int) error {
	switch st {
	case wavers.SampleInt16:
		return wavers.WriteAs[int16](path, sig, sampleRate)
	case wavers.SampleInt24:
		return wavers.WriteAs[wavers.Int24](path, sig, sampleRate)
	case wavers.SampleInt32:
		return wavers.WriteAs[int32](path, sig, sampleRate)
	case wavers.SampleFloat32:
		return wavers.WriteAs[float32](path, sig, sampleRate)
	case wavers.SampleFloat64:
		return wavers.Write(path, sig, sampleRate)
	}

	return fmt.Errorf("%w: %s", wavers.ErrUnsupportedEncoding, st)
}
