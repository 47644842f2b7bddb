// Package config loads the wellgraded configuration via Viper. Settings come
// from defaults, an optional wellgraded.toml found by walking up from the
// working directory, and WELLGRADED_* environment variables, in that
// precedence order.
package config

// Config represents the wellgraded configuration
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig configures result rendering and persistence
type OutputConfig struct {
	Format string `mapstructure:"format"` // "table" or "json"
	Path   string `mapstructure:"path"`   // default family output path, empty = stdout summary only
}

// LogConfig configures the global logger
type LogConfig struct {
	JSON      bool `mapstructure:"json"`      // structured JSON log output
	Verbosity int  `mapstructure:"verbosity"` // baseline -v count, flags add on top
}

// Output format values accepted by OutputConfig.Format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)
