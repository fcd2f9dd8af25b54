// Package config loads server settings from defaults, an optional
// ciphertool.yaml in the working directory, and CIPHERTOOL_* environment
// variables, in increasing order of precedence.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the HTTP server settings.
type Config struct {
	Port         string   `mapstructure:"port"`
	GinMode      string   `mapstructure:"gin_mode"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Load reads the configuration. A missing config file is not an error; only
// a malformed one is.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("allow_origins", []string{"http://localhost:3000"})

	v.SetConfigName("ciphertool")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("ciphertool")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
