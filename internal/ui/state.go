package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/board"
	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/game"
)

// StateSnapshot captures a copy of the state data for rendering without
// requiring the UI to hold locks while laying out widgets.
type StateSnapshot struct {
	Game       game.Snapshot
	Difficulty string
	Theme      ColorTheme
	ShowMines  bool

	LastError error
	Status    string

	Logs []string

	LastUpdated time.Time
}

// AppState tracks the running session plus the view settings shared between
// the Gio event loop and the layout loader goroutine.
type AppState struct {
	mu sync.RWMutex

	session    *game.Session
	difficulty string
	theme      ColorTheme
	showMines  bool

	lastError error
	status    string

	// logs has its own lock: session calls made under mu log through
	// logPaneHook, which appends here.
	logMu    sync.Mutex
	logs     []string
	logLimit int

	lastUpdated time.Time
}

// NewState wraps a session with default view settings.
func NewState(session *game.Session) *AppState {
	s := &AppState{
		session:     session,
		difficulty:  game.Easy.String(),
		showMines:   true,
		logLimit:    200,
		status:      "Ready",
		lastUpdated: time.Now(),
	}
	return s
}

// Snapshot returns a copy of the mutable state for rendering.
func (s *AppState) Snapshot() StateSnapshot {
	s.logMu.Lock()
	logCopy := make([]string, len(s.logs))
	copy(logCopy, s.logs)
	s.logMu.Unlock()

	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := StateSnapshot{
		Difficulty:  s.difficulty,
		Theme:       s.theme,
		ShowMines:   s.showMines,
		LastError:   s.lastError,
		Status:      s.status,
		Logs:        logCopy,
		LastUpdated: s.lastUpdated,
	}
	if s.session != nil {
		snap.Game = s.session.Snapshot()
	}
	return snap
}

// Reveal forwards a player reveal to the session and updates the status line.
func (s *AppState) Reveal(p board.Position) (board.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return board.Noop, nil
	}
	outcome, err := s.session.Reveal(p)
	if err != nil {
		s.lastError = err
		return outcome, err
	}
	switch outcome {
	case board.MineHit:
		s.status = fmt.Sprintf("Boom! Mine at %s", p)
	case board.Safe:
		s.status = fmt.Sprintf("Revealed %s", p)
	}
	if s.session.State() == game.StateWon {
		s.status = "Board cleared"
	}
	s.lastUpdated = time.Now()
	return outcome, nil
}

// ToggleFlag forwards a flag toggle to the session.
func (s *AppState) ToggleFlag(p board.Position) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return false, nil
	}
	flagged, err := s.session.ToggleFlag(p)
	if err != nil {
		s.lastError = err
		return false, err
	}
	s.lastUpdated = time.Now()
	return flagged, nil
}

// NewGame replaces the session with a generated board for d.
func (s *AppState) NewGame(d game.Difficulty, cfg board.Config, seed int64) error {
	sess, err := game.NewSession(cfg, seed)
	if err != nil {
		s.SetError(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = sess
	s.difficulty = d.String()
	s.lastError = nil
	s.status = fmt.Sprintf("New %s game", d)
	s.lastUpdated = time.Now()
	return nil
}

// Restart resets the current session.
func (s *AppState) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	if err := s.session.Reset(); err != nil {
		s.lastError = err
		return err
	}
	s.lastError = nil
	s.status = "New game"
	s.lastUpdated = time.Now()
	return nil
}

// LoadBoard starts a session on a board built from a layout file.
func (s *AppState) LoadBoard(name string, b *board.Board) {
	sess := game.NewSessionFromBoard(b)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = sess
	s.difficulty = "custom"
	s.lastError = nil
	s.status = fmt.Sprintf("Loaded %s", name)
	s.lastUpdated = time.Now()
}

// Session returns the running session.
func (s *AppState) Session() *game.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// SetDifficulty records the difficulty label shown in the status bar.
func (s *AppState) SetDifficulty(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.difficulty = name
	s.lastUpdated = time.Now()
}

// SetTheme selects the board palette.
func (s *AppState) SetTheme(t ColorTheme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == t {
		return
	}
	s.theme = t
	s.lastUpdated = time.Now()
}

// Theme reports the active palette.
func (s *AppState) Theme() ColorTheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetShowMines toggles painting of hidden mines.
func (s *AppState) SetShowMines(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showMines = show
	s.lastUpdated = time.Now()
}

// SetStatus updates the user-facing status message.
func (s *AppState) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.lastUpdated = time.Now()
}

// SetError stores the latest error surfaced to the UI.
func (s *AppState) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = err
	s.lastUpdated = time.Now()
}

// AppendLog appends a log message, trimming the oldest entries past the limit.
func (s *AppState) AppendLog(msg string) {
	s.logMu.Lock()
	defer s.logMu.Unlock()

	s.logs = append(s.logs, msg)
	if s.logLimit > 0 && len(s.logs) > s.logLimit {
		offset := len(s.logs) - s.logLimit
		s.logs = append([]string(nil), s.logs[offset:]...)
	}
}

// logPaneHook copies logrus entries into the in-app log pane.
type logPaneHook struct {
	state  *AppState
	notify func()
}

func (h *logPaneHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
	}
}

func (h *logPaneHook) Fire(entry *logrus.Entry) error {
	msg := entry.Message
	if pos, ok := entry.Data["pos"]; ok {
		msg = fmt.Sprintf("%s at %v", msg, pos)
	}
	h.state.AppendLog(fmt.Sprintf("%s [%s] %s",
		entry.Time.Format("15:04:05"), entry.Level, msg))
	if h.notify != nil {
		h.notify()
	}
	return nil
}
