package app

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gotest.tools/assert"
)

type testOptions struct {
	Name    string `mapstructure:"name"`
	Level   int    `mapstructure:"level"`
	applied bool
	errs    []error
}

func (o *testOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Name, "name", "default", "name")
	fs.IntVar(&o.Level, "level", 1, "level")
}

func (o *testOptions) Validate() []error {
	return o.errs
}

func (o *testOptions) ApplyFlags() []error {
	o.applied = true
	if err := UnmarshalConfig(o); err != nil {
		return []error{err}
	}
	return nil
}

func TestRunCommand(t *testing.T) {
	viper.Reset()
	opts := &testOptions{}
	var ran string
	a := NewApp("demo",
		WithOptions(opts),
		WithConfiguration(),
		WithRunFunc(func(basename string) error {
			ran = basename
			return nil
		}),
	)

	t.Setenv("DEMO_LEVEL", "7")
	cmd := a.Command()
	cmd.SetArgs([]string{"--name", "x"})
	assert.NilError(t, cmd.Execute())

	assert.Equal(t, ran, "demo")
	assert.Assert(t, opts.applied)
	assert.Equal(t, opts.Name, "x")
	assert.Equal(t, opts.Level, 7)
}

func TestValidateErrors(t *testing.T) {
	viper.Reset()
	last := errors.New("second")
	opts := &testOptions{errs: []error{errors.New("first"), last}}
	a := NewApp("demo", WithOptions(opts), WithNoVersion(), WithRunFunc(func(string) error {
		t.Fatal("run must not be reached")
		return nil
	}))

	cmd := a.Command()
	cmd.SetArgs(nil)
	assert.Equal(t, cmd.Execute(), last)
	assert.Assert(t, cmd.Flags().Lookup("version") == nil)
	assert.Assert(t, cmd.Flags().Lookup("config") == nil)
}

func TestSubCommand(t *testing.T) {
	viper.Reset()
	var got []string
	sub := NewCommand("echo", "echo args", WithCommandRunFunc(func(args []string) error {
		got = args
		return nil
	}))
	a := NewApp("demo", WithRunFunc(func(string) error { return nil }))
	a.AddCommands(sub)

	cmd := a.Command()
	cmd.SetArgs([]string{"echo", "a", "b"})
	assert.NilError(t, cmd.Execute())
	assert.DeepEqual(t, got, []string{"a", "b"})

	help, _, err := cmd.Find([]string{"help"})
	assert.NilError(t, err)
	assert.Equal(t, help.Name(), "help")
}

func TestAggregate(t *testing.T) {
	assert.NilError(t, aggregate(nil))
	e := errors.New("only")
	assert.Equal(t, aggregate([]error{e}), e)
}

func TestKlogFlags(t *testing.T) {
	cmd := NewApp("demo").Command()
	assert.Assert(t, cmd.PersistentFlags().Lookup("v") != nil)
	assert.Assert(t, cmd.Flags().Lookup("help") != nil)
}
