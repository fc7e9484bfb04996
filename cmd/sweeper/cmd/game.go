package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSweeper/internal/config"
	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/game"
	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/layout"
)

// gameFlags are the board options shared by play and board. Zero values
// leave the config file setting alone.
type gameFlags struct {
	difficulty string
	seed       int64
	width      int
	height     int
	mines      int
	layoutFile string
}

func (f *gameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.difficulty, "difficulty", "d", "", "difficulty preset: easy, medium or hard")
	cmd.Flags().Int64VarP(&f.seed, "seed", "s", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&f.width, "width", 0, "board width in cells")
	cmd.Flags().IntVar(&f.height, "height", 0, "board height in cells")
	cmd.Flags().IntVarP(&f.mines, "mines", "m", 0, "mine count, overriding the preset")
	cmd.Flags().StringVarP(&f.layoutFile, "layout", "l", "", "load the mine layout from a file instead of generating one")
}

func (f *gameFlags) reset() {
	*f = gameFlags{}
}

// apply copies set flags over cfg and validates the result.
func (f *gameFlags) apply(cfg *config.Config) error {
	if f.difficulty != "" {
		cfg.Difficulty = f.difficulty
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}
	if f.width > 0 {
		cfg.Width = f.width
	}
	if f.height > 0 {
		cfg.Height = f.height
	}
	if f.mines > 0 {
		cfg.Mines = f.mines
	}
	return cfg.Validate()
}

// newSession builds the session described by cfg, or by the layout file when
// one is given. It also returns the difficulty label to display.
func (f *gameFlags) newSession(cfg *config.Config) (*game.Session, string, error) {
	if f.layoutFile != "" {
		parser, err := layout.NewParser()
		if err != nil {
			return nil, "", err
		}
		l, err := parser.ParseFile(f.layoutFile)
		if err != nil {
			return nil, "", err
		}
		b, err := l.Board()
		if err != nil {
			return nil, "", fmt.Errorf("layout %s: %w", f.layoutFile, err)
		}
		return game.NewSessionFromBoard(b), "custom", nil
	}

	bc, err := cfg.BoardConfig()
	if err != nil {
		return nil, "", err
	}
	d, err := cfg.DifficultyPreset()
	if err != nil {
		return nil, "", err
	}
	sess, err := game.NewSession(bc, cfg.ResolveSeed())
	if err != nil {
		return nil, "", err
	}
	return sess, d.String(), nil
}
