package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// addConfigFlag adds flags for a specific server to the specified FlagSet
// object.
func addConfigFlag(basename string, fs *pflag.FlagSet) {
	viper.SetEnvPrefix(strings.Replace(strings.ToUpper(basename), "-", "_", -1))
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	fs.StringVarP(&cfgFile, "config", "C", "",
		"Read configuration from specified `FILE`, support JSON, TOML, YAML, HCL, or Java properties formats.")
}

// readConfig binds fs to viper and loads the --config file, if any.
// Precedence is flag, environment, file, flag default.
func readConfig(fs *pflag.FlagSet) error {
	if err := viper.BindPFlags(fs); err != nil {
		return err
	}
	if cfgFile == "" {
		return nil
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file(%s): %w", cfgFile, err)
	}
	return nil
}

func printConfig() {
	keys := viper.AllKeys()
	if len(keys) > 0 {
		fmt.Fprintf(os.Stderr, "%v Configuration items:\n", color.GreenString("==>"))
		table := uitable.New()
		table.Separator = " "
		table.MaxColWidth = 80
		table.RightAlign(0)
		for _, k := range keys {
			table.AddRow(fmt.Sprintf("%s:", k), viper.Get(k))
		}
		fmt.Fprintln(os.Stderr, table)
	}
}

// UnmarshalConfig decodes the merged flag, environment and file values
// into rawVal.
func UnmarshalConfig(rawVal interface{}) error {
	return viper.Unmarshal(rawVal)
}
