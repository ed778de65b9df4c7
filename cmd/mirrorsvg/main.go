package main

import (
	"fmt"
	"os"

	"github.com/esimov/mirrorsvg/config"
	"github.com/esimov/mirrorsvg/utils"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const helpBanner = `
┌┬┐┬┬─┐┬─┐┌─┐┬─┐┌─┐┬  ┬┌─┐
││││├┬┘├┬┘│ │├┬┘└─┐└┐┌┘│ ┬
┴ ┴┴┴└─┴└─└─┘┴└─└─┘ └┘ └─┘

Mirror images into SVG documents ready for ScanCut.
    Version: %s
`

// Version indicates the current build version.
var Version string

var (
	// Global flags
	cfgFile    string
	outputJSON bool
	verbose    bool

	// Configuration and logger
	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "mirrorsvg",
	Short:         "Mirror a raster image horizontally and embed it into an SVG document",
	Long:          fmt.Sprintf(helpBanner, Version),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env file is fine; the environment is used as it is.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level, format := cfg.Log.Level, cfg.Log.Format
		if verbose {
			level = "debug"
		}
		if outputJSON {
			format = "json"
		}
		logger = utils.NewLogger(level, format, os.Stderr)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: uses env vars)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output logs in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newConvertCmd(), newPreviewCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		os.Exit(1)
	}
}
