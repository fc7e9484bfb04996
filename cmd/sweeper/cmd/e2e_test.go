package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Capture stdout
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	// Read in background to prevent pipe buffer from blocking on Windows
	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		buf.ReadFrom(r)
		close(done)
	}()

	// Reset flags to prevent accumulation between tests
	boardFlags.reset()
	playFlags.reset()
	boardMoves = nil
	boardShowMines = false
	presetsJSON = false
	verbose = false
	configPath = ""

	// never read the developer's real config file
	if !slices.Contains(args, "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "config.yaml"))
	}
	rootCmd.SetArgs(args)
	runErr := rootCmd.Execute()

	w.Close()
	os.Stdout = old
	<-done

	return buf.String(), runErr
}

func TestBoardE2E(t *testing.T) {
	layoutFile := filepath.Join("testdata", "corner.txt")

	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name: "generated easy board",
			args: []string{"board", "--seed", "42"},
			wantContain: []string{
				"Board 10x10, 10 mines (easy, seed 42)",
				"   0 1 2 3 4 5 6 7 8 9",
				"State: Playing",
				"Mines left: 10",
			},
		},
		{
			name: "hard preset",
			args: []string{"board", "-d", "HARD", "--seed", "3"},
			wantContain: []string{
				"60 mines (hard, seed 3)",
			},
		},
		{
			name: "layout flood from corner",
			args: []string{"board", "--layout", layoutFile, "--reveal", "0,0"},
			wantContain: []string{
				"Board 5x4, 2 mines (custom)",
				"reveal (0,0): Safe",
				" 0 . . . 1 -\n",
				" 2 1 1 1 . .\n",
				" 3 - - 1 . .\n",
				"State: Playing",
				"Moves: 1",
			},
		},
		{
			name: "moves run in command line order",
			args: []string{"board", "--layout", layoutFile, "--flag", "0,3", "--reveal", "0,3", "--flag", "0,3", "--reveal", "0,3"},
			wantContain: []string{
				"flag (0,3): true\nreveal (0,3): Noop\nflag (0,3): false\nreveal (0,3): Safe\n",
			},
		},
		{
			name: "mine hit shows mines",
			args: []string{"board", "--layout", layoutFile, "--reveal", "4,0"},
			wantContain: []string{
				"reveal (4,0): MineHit",
				" 0 - - - - *\n",
				" 3 - * - - -\n",
				"State: Lost",
			},
		},
		{
			name: "flags lower mines left",
			args: []string{"board", "--layout", layoutFile, "--flag", "1,1", "--flag", "2,2", "--flag", "3,3", "--show-mines"},
			wantContain: []string{
				" 3 - * - F -\n",
				"Mines left: -1",
			},
		},
		{
			name:    "out of bounds reveal",
			args:    []string{"board", "--layout", layoutFile, "--reveal", "9,9"},
			wantErr: true,
		},
		{
			name:    "malformed position",
			args:    []string{"board", "--reveal", "3"},
			wantErr: true,
		},
		{
			name:    "unknown difficulty",
			args:    []string{"board", "-d", "insane"},
			wantErr: true,
		},
		{
			name:    "too many mines",
			args:    []string{"board", "--width", "3", "--height", "3", "--mines", "9"},
			wantErr: true,
		},
		{
			name:    "missing layout",
			args:    []string{"board", "--layout", "testdata/nope.txt"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err, "output: %s", output)
			for _, want := range tt.wantContain {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestBoardSeedIsReproducible(t *testing.T) {
	first, err := execute(t, "board", "--seed", "1234", "--show-mines")
	require.NoError(t, err)
	second, err := execute(t, "board", "--seed", "1234", "--show-mines")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 10, strings.Count(first, "*"))
}

func TestBoardReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty: medium\nseed: 5\n"), 0o644))

	output, err := execute(t, "board", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, output, "30 mines (medium, seed 5)")
}

func TestPresetsE2E(t *testing.T) {
	output, err := execute(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, output, "easy     10x10  10")
	assert.Contains(t, output, "medium   10x10  30")
	assert.Contains(t, output, "hard     10x10  60")

	output, err = execute(t, "presets", "--json")
	require.NoError(t, err)
	var presets []PresetInfo
	require.NoError(t, json.Unmarshal([]byte(output), &presets))
	require.Len(t, presets, 3)
	assert.Equal(t, PresetInfo{Name: "hard", Width: 10, Height: 10, Mines: 60}, presets[2])
}

func TestParsePosition(t *testing.T) {
	p, err := parsePosition(" 3, 7")
	require.NoError(t, err)
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 7, p.Y)

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, err := parsePosition(bad)
		assert.Error(t, err, bad)
	}
}
