package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/board"
	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/game"
)

type moveKind int

const (
	moveReveal moveKind = iota
	moveToggle
)

type move struct {
	kind moveKind
	pos  board.Position
}

// moveValue is a repeatable flag value; --reveal and --flag share one list so
// moves run in command line order.
type moveValue struct {
	kind  moveKind
	moves *[]move
}

func (f *moveValue) String() string { return "" }

func (f *moveValue) Type() string { return "x,y" }

func (f *moveValue) Set(v string) error {
	p, err := parsePosition(v)
	if err != nil {
		return err
	}
	*f.moves = append(*f.moves, move{kind: f.kind, pos: p})
	return nil
}

func parsePosition(v string) (board.Position, error) {
	xs, ys, ok := strings.Cut(v, ",")
	if !ok {
		return board.Position{}, fmt.Errorf("position %q: want x,y", v)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return board.Position{}, fmt.Errorf("position %q: %w", v, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return board.Position{}, fmt.Errorf("position %q: %w", v, err)
	}
	return board.Pos(x, y), nil
}

var (
	boardFlags     gameFlags
	boardMoves     []move
	boardShowMines bool
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a board and the result of scripted moves",
	Long: `Generate a board (or load one with --layout), apply --reveal and
--flag moves in the order given, and print each outcome followed by the
final board.

Board legend: '-' hidden, 'F' flag, '*' mine (with --show-mines),
'.' revealed empty, digits are adjacent mine counts.

Examples:
  sweeper board --seed 42
  sweeper board --seed 42 --reveal 0,0 --flag 3,4 --show-mines
  sweeper board --layout board.txt --reveal 0,0`,
	RunE: runBoard,
}

func init() {
	boardFlags.register(boardCmd)
	boardCmd.Flags().Var(&moveValue{kind: moveReveal, moves: &boardMoves}, "reveal", "reveal the cell at x,y (repeatable)")
	boardCmd.Flags().Var(&moveValue{kind: moveToggle, moves: &boardMoves}, "flag", "toggle the flag at x,y (repeatable)")
	boardCmd.Flags().BoolVar(&boardShowMines, "show-mines", false, "print hidden mines")
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if err := boardFlags.apply(cfg); err != nil {
		return err
	}
	sess, difficulty, err := boardFlags.newSession(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Board %dx%d, %d mines (%s", sess.Config.Width, sess.Config.Height, sess.Config.Mines, difficulty)
	if boardFlags.layoutFile == "" {
		fmt.Printf(", seed %d", sess.Seed)
	}
	fmt.Println(")")

	for _, m := range boardMoves {
		switch m.kind {
		case moveReveal:
			outcome, err := sess.Reveal(m.pos)
			if err != nil {
				return fmt.Errorf("reveal %s: %w", m.pos, err)
			}
			fmt.Printf("reveal %s: %s\n", m.pos, outcome)
		case moveToggle:
			flagged, err := sess.ToggleFlag(m.pos)
			if err != nil {
				return fmt.Errorf("flag %s: %w", m.pos, err)
			}
			fmt.Printf("flag %s: %t\n", m.pos, flagged)
		}
	}

	snap := sess.Snapshot()
	showMines := boardShowMines || snap.State == game.StateLost
	fmt.Println()
	fmt.Print(snap.Board.Format(showMines))
	fmt.Println()
	fmt.Printf("State: %s\n", snap.State)
	fmt.Printf("Mines left: %d\n", snap.MinesRemaining)
	fmt.Printf("Moves: %d\n", snap.Moves)
	return nil
}
