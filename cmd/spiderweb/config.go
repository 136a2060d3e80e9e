// Config loading for the spiderweb CLI.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spiderweb/web"
)

const (
	configFileName = "spiderweb"
	configFileType = "yaml"
	envPrefix      = "SPIDERWEB"

	cfgKeyMaxPerLevel = "max_per_level"
	cfgKeyLogLevel    = "log_level"

	flagMaxPerLevel = "max-per-level"
	flagLogLevel    = "log-level"

	defaultLogLevel = "info"
)

// loadConfig resolves settings with precedence flag > env (SPIDERWEB_*) >
// config file > defaults. A missing default config file is not an error;
// an explicit --config that cannot be read is.
func loadConfig(cmd *cobra.Command, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyMaxPerLevel, web.DefaultMaxPerLevel)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlag(cfgKeyMaxPerLevel, cmd.Flags().Lookup(flagMaxPerLevel)); err != nil {
		return nil, fmt.Errorf("bind %s: %w", flagMaxPerLevel, err)
	}
	if err := v.BindPFlag(cfgKeyLogLevel, cmd.Flags().Lookup(flagLogLevel)); err != nil {
		return nil, fmt.Errorf("bind %s: %w", flagLogLevel, err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if n := v.GetInt(cfgKeyMaxPerLevel); n <= 0 {
		return nil, fmt.Errorf("%w: %s must be positive, got %d", web.ErrInvalidArgument, cfgKeyMaxPerLevel, n)
	}

	return v, nil
}
