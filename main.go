package main

import (
	"fmt"
	"os"

	"Mainu/config/environment"
	"Mainu/config/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *environment.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mainu",
	Short: "Mainu turns photographed restaurant menus into translated, orderable menus",
	Long: `Mainu sends the recognized text of a menu to a processing backend,
groups the returned dishes into sections and keeps an order cart per menu.

Run "mainu serve" to start the HTTP API or "mainu process" to convert a
single menu from the command line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = environment.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		logger, err = logging.New(cfg.Logging)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd, processCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
