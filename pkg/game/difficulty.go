package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/board"
)

// Mine counts for the named presets.
const (
	MinesEasy   = 10
	MinesMedium = 30
	MinesHard   = 60
)

// ErrUnknownDifficulty is returned by ParseDifficulty for unrecognized names.
var ErrUnknownDifficulty = errors.New("game: unknown difficulty")

// Difficulty selects one of the mine count presets.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists the presets in increasing order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

var difficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", d)
}

// MineCount returns the number of mines for the preset.
func (d Difficulty) MineCount() int {
	switch d {
	case Medium:
		return MinesMedium
	case Hard:
		return MinesHard
	default:
		return MinesEasy
	}
}

// Config returns the default-sized board configuration for the preset.
func (d Difficulty) Config() board.Config {
	return board.Config{
		Width:  board.DefaultWidth,
		Height: board.DefaultHeight,
		Mines:  d.MineCount(),
	}
}

// ParseDifficulty resolves a preset name, case-insensitively.
func ParseDifficulty(name string) (Difficulty, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, d := range Difficulties {
		if difficultyNames[d] == want {
			return d, nil
		}
	}
	return Easy, fmt.Errorf("%w: %q (want easy, medium or hard)", ErrUnknownDifficulty, name)
}
