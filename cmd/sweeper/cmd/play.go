package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSweeper/internal/config"
	"github.com/OpenTraceLab/OpenTraceSweeper/internal/ui"
)

var (
	playFlags gameFlags
	hideMines bool
	themeName string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the Minesweeper window. Left click reveals a cell, right click
toggles a flag. Hidden mines are painted by default; pass --hide-mines for a
real game.

Examples:
  # Easy game
  sweeper play

  # Reproducible medium game with the Nord palette
  sweeper play -d medium --seed 7 --theme nord --hide-mines

  # Play a hand-written layout
  sweeper play --layout board.txt`,
	RunE: runPlay,
}

func init() {
	playFlags.register(playCmd)
	playCmd.Flags().BoolVar(&hideMines, "hide-mines", false, "do not paint hidden mines")
	playCmd.Flags().StringVar(&themeName, "theme", "", "color theme: classic or nord")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if hideMines {
		cfg.ShowMines = false
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if err := playFlags.apply(cfg); err != nil {
		return err
	}

	sess, difficulty, err := playFlags.newSession(cfg)
	if err != nil {
		return err
	}
	theme, err := ui.ParseColorTheme(cfg.Theme)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Launching %s game (seed %d)...\n", difficulty, sess.Seed)
	}

	state := ui.NewState(sess)
	state.SetDifficulty(difficulty)
	state.SetTheme(theme)
	state.SetShowMines(cfg.ShowMines)
	state.AppendLog(fmt.Sprintf("%s board %dx%d with %d mines", difficulty,
		sess.Config.Width, sess.Config.Height, sess.Config.Mines))

	return ui.Run(state, ui.Options{
		Config:     cfg,
		ConfigPath: savePath(path),
		Logger:     log,
	})
}

// savePath returns where UI preference changes are written; an explicit
// --config file is left untouched.
func savePath(loaded string) string {
	if configPath != "" {
		return ""
	}
	if def, err := config.DefaultPath(); err == nil && def == loaded {
		return loaded
	}
	return ""
}
