package game

import "fmt"

// State is the lifecycle of a single game.
type State uint8

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

var stateNames = map[State]string{
	StatePlaying: "Playing",
	StateWon:     "Won",
	StateLost:    "Lost",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", s)
}

// Over reports whether the game has reached a terminal state.
func (s State) Over() bool {
	return s == StateWon || s == StateLost
}
