package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/board"
	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/game"
)

func TestDefaultIsEasyTenByTen(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bc, err := cfg.BoardConfig()
	require.NoError(t, err)
	assert.Equal(t, board.Config{Width: 10, Height: 10, Mines: game.MinesEasy}, bc)
	assert.Equal(t, 50, cfg.CellSize)
	assert.Equal(t, 20, cfg.OriginX)
	assert.Equal(t, 20, cfg.OriginY)
	assert.True(t, cfg.ShowMines)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
difficulty: hard
cell_size: 32
show_mines: false
theme: nord
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, 32, cfg.CellSize)
	assert.False(t, cfg.ShowMines)
	assert.Equal(t, ThemeNord, cfg.Theme)
	// untouched keys keep defaults
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 20, cfg.OriginY)

	bc, err := cfg.BoardConfig()
	require.NoError(t, err)
	assert.Equal(t, game.MinesHard, bc.Mines)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "difficulty: [easy"},
		{"unknown difficulty", "difficulty: insane\n"},
		{"too many mines", "width: 3\nheight: 3\nmines: 9\n"},
		{"unknown theme", "theme: neon\n"},
		{"tiny cells", "cell_size: 1\n"},
		{"negative origin", "origin_x: -4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestMinesOverridePreset(t *testing.T) {
	cfg := Default()
	cfg.Difficulty = "medium"
	cfg.Mines = 12

	bc, err := cfg.BoardConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, bc.Mines)

	cfg.Width, cfg.Height = 5, 5
	cfg.Mines = 0
	_, err = cfg.BoardConfig()
	assert.ErrorIs(t, err, board.ErrInvalidConfig, "30 mines on 5x5")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Theme = ThemeNord
	cfg.Seed = 1234

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestResolveSeed(t *testing.T) {
	cfg := Default()
	cfg.Seed = 77
	assert.Equal(t, int64(77), cfg.ResolveSeed())

	cfg.Seed = 0
	assert.NotZero(t, cfg.ResolveSeed())
}

func TestParseTheme(t *testing.T) {
	name, err := ParseTheme("")
	require.NoError(t, err)
	assert.Equal(t, ThemeClassic, name)

	_, err = ParseTheme("solarized")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestDefaultPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "opentracesweeper", "config.yaml"), path)
}
