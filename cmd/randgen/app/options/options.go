package options

import (
	"errors"
	"fmt"
	"math"

	"randgen/cmd/randgen/app/config"
	"randgen/pkg/util/app"

	"github.com/spf13/pflag"
)

var (
	ErrRange  = errors.New("minimum value must be less than or equal to the maximum value")
	ErrFormat = errors.New("unknown output format")
	ErrSeed   = errors.New("seed must be within [0, 4294967295], or -1 to draw one")
)

type Options struct {
	Appconf config.Config
}

// New creates an Options
func New() *Options {
	return &Options{
		Appconf: config.NewDefaultConfig(),
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.Appconf.Min, "min", o.Appconf.Min, "Minimum value (inclusive)")
	fs.IntVar(&o.Appconf.Max, "max", o.Appconf.Max, "Maximum value (inclusive)")
	fs.IntVar(&o.Appconf.Count, "count", o.Appconf.Count, "How many numbers to generate")
	fs.IntVar(&o.Appconf.MaxCount, "max-count", o.Appconf.MaxCount, "Upper bound accepted for --count")
	fs.Int64Var(&o.Appconf.Seed, "seed", o.Appconf.Seed, "Generator seed, -1 draws one from the OS entropy source")
	fs.StringVar(&o.Appconf.Format, "format", o.Appconf.Format, "Output format: list, lines or table")
}

// process --config and RANDGEN_* environment
func (o *Options) ApplyFlags() []error {
	if err := app.UnmarshalConfig(&o.Appconf); err != nil {
		return []error{err}
	}
	return nil
}

// Validate will check the requirements of options
func (o *Options) Validate() []error {
	var errs []error
	c := o.Appconf

	if c.Min > c.Max {
		errs = append(errs, ErrRange)
	}
	if c.MaxCount < 1 {
		errs = append(errs, fmt.Errorf("max-count must be positive, got %d", c.MaxCount))
	} else if c.Count <= 0 || c.Count > c.MaxCount {
		errs = append(errs, CountError(c.MaxCount))
	}
	if err := ValidateSeed(c.Seed); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	return errs
}

func CountError(maxCount int) error {
	return fmt.Errorf("count must be a positive number not greater than %d", maxCount)
}

func ValidateSeed(seed int64) error {
	if seed != config.NoSeed && (seed < 0 || seed > math.MaxUint32) {
		return fmt.Errorf("%w: %d", ErrSeed, seed)
	}
	return nil
}

func ValidateFormat(format string) error {
	switch format {
	case config.FormatList, config.FormatLines, config.FormatTable:
		return nil
	}
	return fmt.Errorf("%w %q", ErrFormat, format)
}
