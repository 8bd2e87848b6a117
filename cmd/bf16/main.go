// Command bf16 converts decimal numbers to bfloat16 and back,
// printing the bit pattern and what survives the round trip.
//
//	bf16 [-format g] [-prec -1] [-json] [value ...]
//
// With no values it converts 1.022e-36.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/StarOne01/bfloat16"
)

var (
	flagFormat   = flag.String("format", "g", "Output format verb (b, e, f, g, x)")
	flagPrec     = flag.Int("prec", -1, "Output precision, -1 for the fewest digits that round-trip")
	flagJSON     = flag.Bool("json", false, "Print one JSON record per value")
	flagLogLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
)

const defaultValue = "1.022e-36"

type options struct {
	format byte
	prec   int
	json   bool
}

// record is the result of converting one input.
type record struct {
	Input    string            `json:"input"`
	Bits     string            `json:"bits"`
	Value    bfloat16.BFloat16 `json:"value"`
	Widened  string            `json:"widened"`
	Class    string            `json:"class"`
	Exponent int               `json:"exponent"`
}

func convert(input string) (record, error) {
	f, err := strconv.ParseFloat(input, 32)
	if err != nil {
		return record{}, errors.Wrapf(err, "failed to parse %q", input)
	}
	x := bfloat16.FromFloat32(float32(f))
	return record{
		Input:    input,
		Bits:     fmt.Sprintf("0x%04x", x.Bits()),
		Value:    x,
		Widened:  strconv.FormatFloat(float64(x.Float32()), 'g', -1, 32),
		Class:    x.Class().String(),
		Exponent: x.Exponent(),
	}, nil
}

func run(opts options, args []string, w io.Writer) error {
	if len(args) == 0 {
		args = []string{defaultValue}
	}

	enc := json.NewEncoder(w)
	var failed int
	for _, arg := range args {
		rec, err := convert(arg)
		if err != nil {
			log.Error().Err(err).Msg("Conversion failed")
			failed++
			continue
		}
		log.Debug().Str("input", arg).Str("bits", rec.Bits).Str("class", rec.Class).Msg("Converted")

		if opts.json {
			if err := enc.Encode(rec); err != nil {
				return errors.Wrap(err, "failed to write record")
			}
			continue
		}
		_, err = fmt.Fprintf(w, "%s -> %s %s (widened %s, %s, exponent %d)\n",
			rec.Input, rec.Bits, rec.Value.Text(opts.format, opts.prec), rec.Widened, rec.Class, rec.Exponent)
		if err != nil {
			return errors.Wrap(err, "failed to write record")
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d values failed to convert", failed, len(args))
	}
	return nil
}

func main() {
	// Initialize logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	flag.Parse()

	level, err := zerolog.ParseLevel(*flagLogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if len(*flagFormat) != 1 {
		log.Fatal().Str("format", *flagFormat).Msg("Format must be a single verb")
	}
	opts := options{
		format: (*flagFormat)[0],
		prec:   *flagPrec,
		json:   *flagJSON,
	}
	if err := run(opts, flag.Args(), os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("bf16 failed")
	}
}
