package options

import (
	"randgen/cmd/randgen/app/config"

	"github.com/spf13/pflag"
)

// RawOptions are the flags of the raw sub command.
type RawOptions struct {
	Count    int
	MaxCount int
	Seed     int64
}

func NewRaw() *RawOptions {
	c := config.NewDefaultConfig()
	return &RawOptions{
		Count:    c.Count,
		MaxCount: c.MaxCount,
		Seed:     c.Seed,
	}
}

func (o *RawOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.Count, "count", o.Count, "How many 32-bit words to print")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "Generator seed, -1 draws one from the OS entropy source")
}

func (o *RawOptions) Validate() []error {
	var errs []error
	if o.Count <= 0 || o.Count > o.MaxCount {
		errs = append(errs, CountError(o.MaxCount))
	}
	if err := ValidateSeed(o.Seed); err != nil {
		errs = append(errs, err)
	}
	return errs
}
