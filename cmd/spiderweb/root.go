// Root command for the spiderweb CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/spiderweb/web"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	configFile string
	cfg        *viper.Viper
	logger     *zap.Logger
}

// newWeb builds an empty Web[string] from the resolved configuration.
func (a *app) newWeb() (*web.Web[string], error) {
	return web.New[string](
		web.WithMaxPerLevel(a.cfg.GetInt(cfgKeyMaxPerLevel)),
		web.WithLogger(a.logger),
	)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "spiderweb",
		Short: "Spiderweb drives a hierarchical linked container",
		Long: `Spiderweb builds a spider web: values spread over levels of bounded
width, linked horizontally within the flat sequence and vertically between
levels. Use "demo" for a one-shot rendering or "run" for line commands.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, a.configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := newLogger(cfg.GetString(cfgKeyLogLevel))
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			a.cfg, a.logger = cfg, logger
			logger.Debug("configuration loaded",
				zap.Int(cfgKeyMaxPerLevel, cfg.GetInt(cfgKeyMaxPerLevel)),
				zap.String("config_file", cfg.ConfigFileUsed()))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: ./spiderweb.yaml if present)")
	flags.Int(flagMaxPerLevel, web.DefaultMaxPerLevel, "maximum number of nodes per level")
	flags.String(flagLogLevel, defaultLogLevel, "log level: debug, info, warn, error")

	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newRunCmd(a))

	return root
}
