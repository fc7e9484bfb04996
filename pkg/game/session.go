package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/board"
)

var log = logrus.New()

// SetLogger replaces the package logger, letting the CLI share its level and
// formatter.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// Session owns the board of one running game and enforces the
// Playing -> Won | Lost lifecycle on top of the board operations.
type Session struct {
	ID     string
	Config board.Config
	Seed   int64

	board    *board.Board
	state    State
	exploded *board.Position
	moves    int

	rng *rand.Rand
	// fixed is the mine layout for sessions started from a given board;
	// Reset rebuilds the same layout instead of generating a new one.
	fixed []board.Position
}

// Snapshot is a read-only copy of the session for rendering.
type Snapshot struct {
	ID             string
	Seed           int64
	Board          *board.Board
	State          State
	Exploded       *board.Position
	MinesRemaining int
	Moves          int
}

// NewSession generates a board for cfg using a source seeded with seed.
func NewSession(cfg board.Config, seed int64) (*Session, error) {
	s := &Session{
		Config: cfg,
		Seed:   seed,
		rng:    board.NewRand(seed),
	}
	if err := s.generate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSessionFromBoard starts a game on an existing board, such as one built
// from a layout file.
func NewSessionFromBoard(b *board.Board) *Session {
	s := &Session{
		ID: newSessionID(),
		Config: board.Config{
			Width:  b.Width(),
			Height: b.Height(),
			Mines:  b.MineCount(),
		},
		board: b,
		fixed: b.MinePositions(),
	}
	s.logger().WithField("board", fmt.Sprintf("%dx%d", b.Width(), b.Height())).Info("game started from layout")
	return s
}

func (s *Session) generate() error {
	b, err := board.Generate(s.Config, s.rng)
	if err != nil {
		return fmt.Errorf("game: generate board: %w", err)
	}
	s.ID = newSessionID()
	s.board = b
	s.state = StatePlaying
	s.exploded = nil
	s.moves = 0
	s.logger().WithFields(logrus.Fields{
		"board": fmt.Sprintf("%dx%d", s.Config.Width, s.Config.Height),
		"mines": s.Config.Mines,
		"seed":  s.Seed,
	}).Info("game started")
	return nil
}

// Reset starts a new game with the same configuration. Generated sessions
// draw a fresh seed from the session source so a seeded run stays
// reproducible across resets.
func (s *Session) Reset() error {
	if s.fixed != nil {
		b, err := board.FromMines(s.Config.Width, s.Config.Height, s.fixed)
		if err != nil {
			return fmt.Errorf("game: rebuild board: %w", err)
		}
		s.ID = newSessionID()
		s.board = b
		s.state = StatePlaying
		s.exploded = nil
		s.moves = 0
		s.logger().Info("game restarted from layout")
		return nil
	}
	s.Seed = s.rng.Int63()
	s.rng = board.NewRand(s.Seed)
	return s.generate()
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Exploded returns the mine that ended the game, if any.
func (s *Session) Exploded() (board.Position, bool) {
	if s.exploded == nil {
		return board.Position{}, false
	}
	return *s.exploded, true
}

// MinesRemaining is the mine count minus placed flags. It goes negative when
// the player over-flags.
func (s *Session) MinesRemaining() int {
	return s.board.MineCount() - s.board.FlagCount()
}

// Moves returns the number of reveal and flag actions that changed the board.
func (s *Session) Moves() int { return s.moves }

// Cell returns the cell at p.
func (s *Session) Cell(p board.Position) (board.Cell, bool) {
	return s.board.At(p)
}

// Reveal applies a player reveal at p. Finished games and flagged cells
// ignore reveals and report Noop.
func (s *Session) Reveal(p board.Position) (board.Outcome, error) {
	if s.state.Over() {
		return board.Noop, nil
	}
	if c, ok := s.board.At(p); ok && c.Flagged {
		s.logger().WithField("pos", p.String()).Debug("reveal blocked by flag")
		return board.Noop, nil
	}

	outcome, cells, err := s.board.RevealCells(p)
	if err != nil {
		return board.Noop, err
	}

	entry := s.logger().WithFields(logrus.Fields{
		"pos":     p.String(),
		"outcome": outcome.String(),
	})
	switch outcome {
	case board.MineHit:
		s.moves++
		s.state = StateLost
		hit := p
		s.exploded = &hit
		entry.Warn("you lost")
	case board.Safe:
		s.moves++
		entry.WithField("revealed", len(cells)).Debug("cells revealed")
		if s.board.Cleared() {
			s.state = StateWon
			entry.WithField("moves", s.moves).Info("you won")
		}
	}
	return outcome, nil
}

// ToggleFlag flips the flag at p and returns the new flag state. Finished
// games ignore it.
func (s *Session) ToggleFlag(p board.Position) (bool, error) {
	if s.state.Over() {
		c, _ := s.board.At(p)
		return c.Flagged, nil
	}
	before, ok := s.board.At(p)
	flagged, err := s.board.ToggleFlag(p)
	if err != nil {
		return false, err
	}
	if ok && before.Flagged != flagged {
		s.moves++
		s.logger().WithFields(logrus.Fields{
			"pos":     p.String(),
			"flagged": flagged,
		}).Debug("flag toggled")
	}
	return flagged, nil
}

// Snapshot copies the session for a reader that must not mutate it.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:             s.ID,
		Seed:           s.Seed,
		Board:          s.board.Clone(),
		State:          s.state,
		MinesRemaining: s.MinesRemaining(),
		Moves:          s.moves,
	}
	if s.exploded != nil {
		hit := *s.exploded
		snap.Exploded = &hit
	}
	return snap
}

func (s *Session) logger() *logrus.Entry {
	return log.WithField("session", s.ID)
}

func newSessionID() string {
	return uuid.Must(uuid.NewV7()).String()
}
