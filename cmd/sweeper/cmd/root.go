package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSweeper/internal/config"
	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/game"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "OpenTraceSweeper - Minesweeper on a 10x10 board",
	Long: `A single-player Minesweeper with a Gio window and a headless board
inspector for debugging layouts and seeds.

Examples:
  sweeper play                                  # Easy game, random seed
  sweeper play --difficulty hard --seed 42      # Reproducible hard game
  sweeper board --seed 42 --reveal 0,0          # Print the board after one move
  sweeper board --layout board.txt --show-mines # Inspect a hand-written layout
  sweeper presets                               # List difficulty presets`,
	Version: "0.9.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.InfoLevel)
		}
		game.SetLogger(log)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/opentracesweeper/config.yaml)")
}

// loadConfig reads the config file named by --config, or the default one.
func loadConfig() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, "", fmt.Errorf("locate config: %w", err)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	log.WithField("path", path).Debug("config loaded")
	return cfg, path, nil
}
