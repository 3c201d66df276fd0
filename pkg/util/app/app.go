package app

import (
	"fmt"
	"os"

	"randgen/pkg/util/app/version"
	"randgen/pkg/util/log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	progressMessage = color.GreenString("==>")
	usageTemplate   = fmt.Sprintf(`%s{{if .Runnable}}
  %s{{end}}{{if .HasAvailableSubCommands}}
  %s{{end}}{{if gt (len .Aliases) 0}}

%s
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

%s
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

%s{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  %s {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

%s
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

%s
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

%s{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "%s --help" for more information about a command.{{end}}
`,
		color.CyanString("Usage:"),
		color.GreenString("{{.UseLine}}"),
		color.GreenString("{{.CommandPath}} [command]"),
		color.CyanString("Aliases:"),
		color.CyanString("Examples:"),
		color.CyanString("Available Commands:"),
		color.GreenString("{{rpad .Name .NamePadding }}"),
		color.CyanString("Flags:"),
		color.CyanString("Global Flags:"),
		color.CyanString("Additional help topics:"),
		color.GreenString("{{.CommandPath}} [command]"),
	)
)

// App is the main structure of a cli application.
// It is recommended that an app be created with the app.NewApp() function.
type App struct {
	name         string
	description  string
	options      CliOptions
	runFunc      RunFunc
	noVersion    bool
	commands     []*Command
	configurable bool
}

// Option defines optional parameters for initializing the application
// structure.
type Option func(*App)

// WithOptions to open the application's function to read from the command line
// or read parameters from the configuration file.
func WithOptions(opt CliOptions) Option {
	return func(a *App) {
		a.options = opt
	}
}

// RunFunc defines the application's startup callback function.
type RunFunc func(basename string) error

// WithRunFunc is used to set the application startup callback function option.
func WithRunFunc(run RunFunc) Option {
	return func(a *App) {
		a.runFunc = run
	}
}

// WithDescription is used to set the description of the application.
func WithDescription(desc string) Option {
	return func(a *App) {
		a.description = desc
	}
}

// WithNoVersion set the application does not provide version flag.
func WithNoVersion() Option {
	return func(a *App) {
		a.noVersion = true
	}
}

// WithConfiguration adds the --config flag and binds every flag of the
// application to viper, so values may come from flags, environment or a
// configuration file. Options implementing ConfigurableOptions get their
// ApplyFlags called before Validate.
func WithConfiguration() Option {
	return func(a *App) {
		a.configurable = true
	}
}

// NewApp creates a new application instance based on the given application name,
// binary name, and other options.
func NewApp(name string, opts ...Option) *App {
	a := &App{
		name: name,
	}

	for _, o := range opts {
		o(a)
	}

	return a
}

// Command builds the cobra command tree of the application.
func (a *App) Command() *cobra.Command {
	initFlag()

	cmd := &cobra.Command{
		Use:           FormatBaseName(a.name),
		Long:          a.description,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetUsageTemplate(usageTemplate)
	cmd.Flags().SortFlags = false
	if len(a.commands) > 0 {
		for _, command := range a.commands {
			cmd.AddCommand(command.cobraCommand())
		}
		cmd.SetHelpCommand(helpCommand(a.name))
	}
	if a.runFunc != nil {
		cmd.RunE = a.runCommand
	}

	if a.configurable {
		addConfigFlag(a.name, cmd.Flags())
	}

	cmd.PersistentFlags().AddGoFlagSet(goFlags)
	if a.options != nil {
		a.options.AddFlags(cmd.Flags())
	}

	if !a.noVersion {
		version.AddFlags(cmd.Flags())
	}
	addHelpFlag(a.name, cmd.Flags())

	return cmd
}

// Run is used to launch the application.
func (a *App) Run() {
	defer log.Flush()

	if err := a.Command().Execute(); err != nil {
		fmt.Printf("%v %v\n", color.RedString("Error:"), err)
		log.Flush()
		os.Exit(1)
	}
}

func (a *App) runCommand(cmd *cobra.Command, args []string) error {
	if !a.noVersion {
		version.PrintAndExitIfRequested(a.name)
	}
	log.V(1).Infof("Starting %s...", a.name)
	wd, _ := os.Getwd()
	log.V(1).Infof("WorkingDir: %s", wd)
	log.V(1).Infof("Args: %v", os.Args)

	if a.configurable {
		if err := readConfig(cmd.Flags()); err != nil {
			return err
		}
		if log.V(2).Enabled() {
			printConfig()
		}
	}

	if a.options != nil {
		if c, ok := a.options.(ConfigurableOptions); ok && a.configurable {
			if err := aggregate(c.ApplyFlags()); err != nil {
				return err
			}
		}
		if err := aggregate(a.options.Validate()); err != nil {
			return err
		}
	}

	if !a.noVersion {
		log.V(1).Infof("Version: %s", version.Get())
	}

	if a.runFunc != nil {
		return a.runFunc(a.name)
	}
	return nil
}

// AddCommand adds sub command to the application.
func (a *App) AddCommand(cmd *Command) {
	a.commands = append(a.commands, cmd)
}

// AddCommands adds multiple sub commands to the application.
func (a *App) AddCommands(cmds ...*Command) {
	a.commands = append(a.commands, cmds...)
}

func aggregate(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	for _, err := range errs[:len(errs)-1] {
		fmt.Printf("%v %v\n", color.RedString("Error:"), err)
	}
	return errs[len(errs)-1]
}
