package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/board"
	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/game"
)

// Color theme names.
const (
	ThemeClassic = "classic"
	ThemeNord    = "nord"
)

// Themes lists the selectable color themes.
var Themes = []string{ThemeClassic, ThemeNord}

// ErrUnknownTheme is returned for a theme name not in Themes.
var ErrUnknownTheme = errors.New("config: unknown theme")

// Config stores the startup settings for a game window.
type Config struct {
	Difficulty string `yaml:"difficulty"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Mines      int    `yaml:"mines,omitempty"` // overrides the difficulty preset when > 0
	Seed       int64  `yaml:"seed,omitempty"`  // 0 picks a time-derived seed

	CellSize     int  `yaml:"cell_size"`
	OriginX      int  `yaml:"origin_x"`
	OriginY      int  `yaml:"origin_y"`
	WindowWidth  int  `yaml:"window_width"`
	WindowHeight int  `yaml:"window_height"`
	ShowMines    bool `yaml:"show_mines"`

	Theme string `yaml:"theme"`
}

// Default returns the easy 10x10 board with the reference screen geometry.
func Default() *Config {
	return &Config{
		Difficulty:   game.Easy.String(),
		Width:        board.DefaultWidth,
		Height:       board.DefaultHeight,
		CellSize:     50,
		OriginX:      20,
		OriginY:      20,
		WindowWidth:  800,
		WindowHeight: 600,
		ShowMines:    true,
		Theme:        ThemeClassic,
	}
}

// DefaultPath returns the platform config file location.
func DefaultPath() (string, error) {
	var configDir string
	if appData := os.Getenv("APPDATA"); appData != "" {
		// Windows: %APPDATA%\OpenTraceSweeper
		configDir = filepath.Join(appData, "OpenTraceSweeper")
	} else if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "opentracesweeper")
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config", "opentracesweeper")
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// Load reads the config at path. A missing file yields the defaults; keys
// absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks every field that can make startup fail.
func (c *Config) Validate() error {
	if _, err := c.BoardConfig(); err != nil {
		return err
	}
	if c.CellSize < 3 {
		return fmt.Errorf("cell_size %d too small (min 3)", c.CellSize)
	}
	if c.OriginX < 0 || c.OriginY < 0 {
		return fmt.Errorf("board origin (%d,%d) must not be negative", c.OriginX, c.OriginY)
	}
	if _, err := ParseTheme(c.Theme); err != nil {
		return err
	}
	return nil
}

// DifficultyPreset resolves the configured difficulty name.
func (c *Config) DifficultyPreset() (game.Difficulty, error) {
	return game.ParseDifficulty(c.Difficulty)
}

// BoardConfig returns the board to generate: the difficulty preset's mine
// count unless Mines overrides it.
func (c *Config) BoardConfig() (board.Config, error) {
	d, err := c.DifficultyPreset()
	if err != nil {
		return board.Config{}, err
	}
	bc := board.Config{
		Width:  c.Width,
		Height: c.Height,
		Mines:  d.MineCount(),
	}
	if c.Mines > 0 {
		bc.Mines = c.Mines
	}
	if err := bc.Validate(); err != nil {
		return board.Config{}, err
	}
	return bc, nil
}

// ResolveSeed returns the configured seed, or a time-derived one when unset.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// ParseTheme validates a theme name; empty means classic.
func ParseTheme(name string) (string, error) {
	if name == "" {
		return ThemeClassic, nil
	}
	for _, t := range Themes {
		if t == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}
