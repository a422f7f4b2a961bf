// Command sdrenc builds an encoder from flags and prints the encoding of
// each value given on the command line.
//
//	sdrenc scalar -w 3 -min 1 -max 4 -resolution 0.5 1 1.5 2
//	sdrenc category -w 3 -categories foo,bar,baz bar
//	sdrenc bool -w 3 true false
//	sdrenc date -season 3 -dow 1 -weekend 3 -tod 5 2010-11-04T14:55:00Z
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/htm-community/sdrenc/encoders"
	"github.com/htm-community/sdrenc/sdr"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

const usage = "usage: sdrenc scalar|category|bool|date [flags] values..."

type commonFlags struct {
	width   int
	verbose bool
	plain   bool
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	c := new(commonFlags)
	fs.IntVar(&c.width, "w", 3, "Number of active bits (odd)")
	fs.BoolVar(&c.verbose, "v", false, "Debug logging to stderr")
	fs.BoolVar(&c.plain, "plain", false, "Print bits without styling")
	return fs, c
}

// encodeFunc encodes one command line value.
type encodeFunc func(value string) (*sdr.SDR, error)

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	fs, common := newFlagSet(args[0], stderr)
	var build func() (encodeFunc, error)

	switch args[0] {
	case "scalar":
		build = scalarCommand(fs, common)
	case "category":
		build = categoryCommand(fs, common)
	case "bool":
		build = boolCommand(common)
	case "date":
		build = dateCommand(fs)
	default:
		fmt.Fprintln(stderr, usage)
		return 2
	}

	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	if common.verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			encoders.SetLogger(l)
			defer func() { _ = l.Sync() }()
		}
	}

	encode, err := build()
	if err != nil {
		fmt.Fprintln(stderr, "sdrenc:", err)
		return 1
	}

	p := newPrinter(stdout, common.plain)
	status := 0
	for _, value := range fs.Args() {
		s, err := encode(value)
		if err != nil {
			fmt.Fprintf(stderr, "sdrenc: %v\n", err)
			status = 1
			continue
		}
		p.print(value, s)
	}
	return status
}

func scalarCommand(fs *flag.FlagSet, common *commonFlags) func() (encodeFunc, error) {
	minVal := fs.Float64("min", 0, "Minimum input value")
	maxVal := fs.Float64("max", 0, "Maximum input value")
	n := fs.Int("n", 0, "Output length in bits")
	resolution := fs.Float64("resolution", 0, "Size the output by resolution")
	radius := fs.Float64("radius", 0, "Size the output by radius")
	periodic := fs.Bool("periodic", false, "Input wraps around")
	clip := fs.Bool("clip", false, "Clip out of range input")

	return func() (encodeFunc, error) {
		p := encoders.NewScalarEncoderParams(common.width, *minVal, *maxVal)
		p.Periodic = *periodic
		p.ClipInput = *clip
		switch {
		case *n > 0:
			p.Size = encoders.FixedSize(*n)
		case *resolution > 0:
			p.Size = encoders.Resolution(*resolution)
		case *radius > 0:
			p.Size = encoders.Radius(*radius)
		}

		enc, err := encoders.NewScalarEncoder(p)
		if err != nil {
			return nil, err
		}
		return func(value string) (*sdr.SDR, error) {
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, err
			}
			return enc.Encode(v), nil
		}, nil
	}
}

func categoryCommand(fs *flag.FlagSet, common *commonFlags) func() (encodeFunc, error) {
	categories := fs.String("categories", "", "Comma separated categories")

	return func() (encodeFunc, error) {
		var list []string
		if *categories != "" {
			list = strings.Split(*categories, ",")
		}
		enc, err := encoders.NewCategoryEncoder(common.width, list)
		if err != nil {
			return nil, err
		}
		return enc.Encode, nil
	}
}

func boolCommand(common *commonFlags) func() (encodeFunc, error) {
	return func() (encodeFunc, error) {
		enc, err := encoders.NewBooleanEncoder(common.width)
		if err != nil {
			return nil, err
		}
		return func(value string) (*sdr.SDR, error) {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, err
			}
			return enc.Encode(b), nil
		}, nil
	}
}

func dateCommand(fs *flag.FlagSet) func() (encodeFunc, error) {
	p := encoders.NewDateEncoderParams()
	fs.IntVar(&p.SeasonWidth, "season", 0, "Season width")
	fs.Float64Var(&p.SeasonRadius, "season-radius", p.SeasonRadius, "Season radius in days")
	fs.IntVar(&p.DayOfWeekWidth, "dow", 0, "Day of week width")
	fs.Float64Var(&p.DayOfWeekRadius, "dow-radius", p.DayOfWeekRadius, "Day of week radius in days")
	fs.IntVar(&p.WeekendWidth, "weekend", 0, "Weekend width")
	fs.IntVar(&p.HolidayWidth, "holiday", 0, "Holiday width")
	fs.Float64Var(&p.HolidayRadius, "holiday-radius", p.HolidayRadius, "Holiday radius")
	fs.IntVar(&p.TimeOfDayWidth, "tod", 0, "Time of day width")
	fs.Float64Var(&p.TimeOfDayRadius, "tod-radius", p.TimeOfDayRadius, "Time of day radius in hours")

	return func() (encodeFunc, error) {
		enc, err := encoders.NewDateEncoder(p)
		if err != nil {
			return nil, err
		}
		return func(value string) (*sdr.SDR, error) {
			d, err := time.Parse(time.RFC3339, value)
			if err != nil {
				return nil, err
			}
			return enc.Encode(d), nil
		}, nil
	}
}
