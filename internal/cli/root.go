// Package cli holds the portfolio command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"portfolio/internal/config"
	"portfolio/internal/logging"
)

var (
	cfgFile   string
	appConfig config.Config
	logger    zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site backed by Directus, Payload or Postgres",
	Long: `portfolio serves a personal portfolio site. Content comes from a
Directus or Payload CMS, or straight from Postgres, and falls back to the
content built into the binary whenever the backend is missing or down.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")
}

func initializeConfig() error {
	cfg, err := config.Load(viper.New(), cfgFile)
	if err != nil {
		return err
	}

	l, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = l
	logger.Debug().Str("backend", string(cfg.Backend)).Msg("configuration loaded")
	return nil
}
