package app

import (
	"fmt"
	"io"
	"os"

	"randgen/cmd/randgen/app/options"
	"randgen/pkg/generator"
	"randgen/pkg/util/app"
	"randgen/pkg/util/log"
)

const commandDesc = `Generate pseudo-random integers in [min, max] with the MT19937
Mersenne Twister. The same --seed always yields the same numbers.
MT19937 is not cryptographically secure.`

func New(basename string) *app.App {
	return newApp(basename, os.Stdout)
}

func newApp(basename string, out io.Writer) *app.App {
	opts := options.New()
	application := app.NewApp(
		basename,
		app.WithOptions(opts),
		app.WithDescription(commandDesc),
		app.WithConfiguration(),
		app.WithRunFunc(run(opts, out)),
	)
	application.AddCommand(newRawCommand(out))
	return application
}

func run(opts *options.Options, out io.Writer) app.RunFunc {
	return func(basename string) error {
		c := opts.Appconf
		g := generator.New(resolveSeed(c.Seed), generator.WithMaxCount(c.MaxCount))
		nums, err := g.Generate(c.Min, c.Max, c.Count)
		if err != nil {
			log.Error(err, "generate failed", "min", c.Min, "max", c.Max, "count", c.Count)
			return err
		}
		log.V(2).Infof("generated %d numbers in [%d, %d]", len(nums), c.Min, c.Max)

		return render(out, nums, c.Format)
	}
}

func newRawCommand(out io.Writer) *app.Command {
	opts := options.NewRaw()
	return app.NewCommand("raw",
		"Print raw 32-bit generator output",
		app.WithCommandOptions(opts),
		app.WithCommandRunFunc(func(args []string) error {
			g := generator.New(resolveSeed(opts.Seed))
			for i := 0; i < opts.Count; i++ {
				if _, err := fmt.Fprintln(out, g.Uint32()); err != nil {
					return err
				}
			}
			return nil
		}),
	)
}
