package game

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/board"
)

func init() {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	SetLogger(quiet)
}

func centerMineSession(t *testing.T) *Session {
	t.Helper()
	b, err := board.FromMines(3, 3, []board.Position{board.Pos(1, 1)})
	require.NoError(t, err)
	return NewSessionFromBoard(b)
}

func TestSessionLoseOnMine(t *testing.T) {
	s := centerMineSession(t)
	require.Equal(t, StatePlaying, s.State())

	outcome, err := s.Reveal(board.Pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, board.MineHit, outcome)
	assert.Equal(t, StateLost, s.State())

	hit, ok := s.Exploded()
	require.True(t, ok)
	assert.Equal(t, board.Pos(1, 1), hit)

	// Input is ignored once the game is over.
	outcome, err = s.Reveal(board.Pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, board.Noop, outcome)
	c, _ := s.Cell(board.Pos(0, 0))
	assert.False(t, c.Revealed)

	flagged, err := s.ToggleFlag(board.Pos(2, 2))
	require.NoError(t, err)
	assert.False(t, flagged)
}

func TestSessionWinWhenAllSafeCellsRevealed(t *testing.T) {
	s := centerMineSession(t)

	first := []board.Position{board.Pos(0, 0), board.Pos(1, 0), board.Pos(2, 0), board.Pos(0, 1)}
	for _, p := range first {
		outcome, err := s.Reveal(p)
		require.NoError(t, err)
		assert.Equal(t, board.Safe, outcome)
		assert.Equal(t, StatePlaying, s.State())
	}
	for _, p := range []board.Position{board.Pos(2, 1), board.Pos(0, 2), board.Pos(1, 2)} {
		_, err := s.Reveal(p)
		require.NoError(t, err)
	}
	assert.Equal(t, StatePlaying, s.State())

	_, err := s.Reveal(board.Pos(2, 2))
	require.NoError(t, err)
	assert.Equal(t, StateWon, s.State())
	assert.Equal(t, 8, s.Moves())
	_, exploded := s.Exploded()
	assert.False(t, exploded)
}

func TestSessionFlagBlocksReveal(t *testing.T) {
	s := centerMineSession(t)

	flagged, err := s.ToggleFlag(board.Pos(1, 1))
	require.NoError(t, err)
	require.True(t, flagged)
	assert.Equal(t, 0, s.MinesRemaining())

	outcome, err := s.Reveal(board.Pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, board.Noop, outcome)
	assert.Equal(t, StatePlaying, s.State())

	_, err = s.ToggleFlag(board.Pos(1, 1))
	require.NoError(t, err)
	outcome, err = s.Reveal(board.Pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, board.MineHit, outcome)
}

func TestSessionOverFlaggingGoesNegative(t *testing.T) {
	s := centerMineSession(t)
	for _, p := range []board.Position{board.Pos(0, 0), board.Pos(2, 2)} {
		_, err := s.ToggleFlag(p)
		require.NoError(t, err)
	}
	assert.Equal(t, -1, s.MinesRemaining())
}

func TestSessionOutOfBounds(t *testing.T) {
	s := centerMineSession(t)

	_, err := s.Reveal(board.Pos(5, 5))
	assert.ErrorIs(t, err, board.ErrOutOfBounds)
	_, err = s.ToggleFlag(board.Pos(-1, 0))
	assert.ErrorIs(t, err, board.ErrOutOfBounds)
	assert.Equal(t, 0, s.Moves())
}

func TestNewSessionSeeded(t *testing.T) {
	cfg := Easy.Config()

	a, err := NewSession(cfg, 99)
	require.NoError(t, err)
	b, err := NewSession(cfg, 99)
	require.NoError(t, err)

	assert.Equal(t, a.Snapshot().Board.MinePositions(), b.Snapshot().Board.MinePositions())
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, MinesEasy, a.MinesRemaining())

	// Resets follow the same seed chain.
	require.NoError(t, a.Reset())
	require.NoError(t, b.Reset())
	assert.Equal(t, a.Seed, b.Seed)
	assert.NotEqual(t, int64(99), a.Seed)
	assert.Equal(t, a.Snapshot().Board.MinePositions(), b.Snapshot().Board.MinePositions())
}

func TestNewSessionInvalidConfig(t *testing.T) {
	_, err := NewSession(board.Config{Width: 2, Height: 2, Mines: 4}, 1)
	assert.ErrorIs(t, err, board.ErrInvalidConfig)
}

func TestResetRestoresLayout(t *testing.T) {
	s := centerMineSession(t)
	firstID := s.ID

	_, err := s.Reveal(board.Pos(1, 1))
	require.NoError(t, err)
	require.Equal(t, StateLost, s.State())

	require.NoError(t, s.Reset())
	assert.Equal(t, StatePlaying, s.State())
	assert.NotEqual(t, firstID, s.ID)
	assert.Equal(t, []board.Position{board.Pos(1, 1)}, s.Snapshot().Board.MinePositions())
	assert.Equal(t, 0, s.Snapshot().Board.RevealedCount())
	assert.Equal(t, 0, s.Moves())
}

func TestSnapshotIsDetached(t *testing.T) {
	s := centerMineSession(t)
	snap := s.Snapshot()

	_, err := s.Reveal(board.Pos(0, 0))
	require.NoError(t, err)

	c, _ := snap.Board.At(board.Pos(0, 0))
	assert.False(t, c.Revealed)
	assert.Equal(t, 0, snap.Moves)
}

func TestStateAndDifficultyNames(t *testing.T) {
	assert.Equal(t, "Playing", StatePlaying.String())
	assert.Equal(t, "Won", StateWon.String())
	assert.Equal(t, "Lost", StateLost.String())
	assert.Equal(t, "State(7)", State(7).String())
	assert.False(t, StatePlaying.Over())
	assert.True(t, StateLost.Over())

	tests := []struct {
		name  string
		want  Difficulty
		mines int
	}{
		{"easy", Easy, 10},
		{"Medium", Medium, 30},
		{" HARD ", Hard, 60},
	}
	for _, tt := range tests {
		d, err := ParseDifficulty(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d)
		assert.Equal(t, tt.mines, d.MineCount())
		assert.Equal(t, board.Config{Width: 10, Height: 10, Mines: tt.mines}, d.Config())
	}

	_, err := ParseDifficulty("nightmare")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}
