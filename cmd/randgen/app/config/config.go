package config

const (
	FormatList  = "list"
	FormatLines = "lines"
	FormatTable = "table"

	// NoSeed asks for a seed drawn from the OS entropy source.
	NoSeed = int64(-1)
)

type Config struct {
	Min      int    `mapstructure:"min"`
	Max      int    `mapstructure:"max"`
	Count    int    `mapstructure:"count"`
	MaxCount int    `mapstructure:"max-count"`
	Seed     int64  `mapstructure:"seed"`
	Format   string `mapstructure:"format"`
}

func NewDefaultConfig() Config {
	return Config{
		Min:      1,
		Max:      100,
		Count:    5,
		MaxCount: 1000,
		Seed:     NoSeed,
		Format:   FormatList,
	}
}
