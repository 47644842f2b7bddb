package config

import "github.com/spf13/viper"

// SetDefaults applies the default configuration values to a Viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.format", FormatTable)
	v.SetDefault("output.path", "")
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}
