package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/OpenTraceSweeper/internal/config"
	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/board"
	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/game"
	boardlayout "github.com/OpenTraceLab/OpenTraceSweeper/pkg/layout"
)

type difficultyButton struct {
	difficulty game.Difficulty
	click      widget.Clickable
}

// loadedLayout is the result of a file picker run, handed back to the
// event loop.
type loadedLayout struct {
	name  string
	board *board.Board
	err   error
}

// App drives the Gio-based game window.
type App struct {
	Window *app.Window
	Theme  *material.Theme
	State  *AppState

	// Config is the effective startup configuration. Theme changes are
	// also written to ConfigPath when it is set.
	Config     *config.Config
	ConfigPath string

	ops op.Ops
	log *logrus.Entry

	explorer *explorer.Explorer
	parser   *boardlayout.Parser
	loaded   chan loadedLayout

	grid   Grid
	clicks clickTracker
	seeds  *rand.Rand

	difficultyBtns []*difficultyButton
	newGameBtn     widget.Clickable
	openBtn        widget.Clickable
	themeBtn       widget.Clickable
	minesBtn       widget.Clickable

	newGameIcon *widget.Icon
	openIcon    *widget.Icon
	themeIcon   *widget.Icon
	flagIcon    *widget.Icon

	logList layout.List
}

// New wires the Gio window, theme, and shared state together.
func New(window *app.Window, state *AppState, cfg *config.Config, logger *logrus.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	baseTheme := material.NewTheme()
	baseTheme.Palette = material.Palette{
		Bg:         color.NRGBA{R: 245, G: 246, B: 252, A: 255},
		Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
		ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
	a := &App{
		Window:  window,
		Theme:   baseTheme,
		State:   state,
		Config:  cfg,
		log:     logger.WithField("component", "ui"),
		loaded:  make(chan loadedLayout, 1),
		seeds:   rand.New(rand.NewSource(cfg.ResolveSeed())),
		logList: layout.List{Axis: layout.Vertical, ScrollToEnd: true},
	}
	if window != nil {
		a.explorer = explorer.NewExplorer(window)
	}
	parser, err := boardlayout.NewParser()
	if err != nil {
		a.log.WithError(err).Error("layout parser unavailable")
	}
	a.parser = parser
	for _, d := range game.Difficulties {
		a.difficultyBtns = append(a.difficultyBtns, &difficultyButton{difficulty: d})
	}
	a.initIcons()
	return a
}

// Run processes Gio events until the window is closed.
func (a *App) Run() error {
	for {
		e := a.Window.Event()
		if a.explorer != nil {
			a.explorer.ListenEvents(e)
		}
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.drainLoaded()
			a.handleInput(gtx)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) initIcons() {
	makeIcon := func(data []byte, name string) *widget.Icon {
		icon, err := widget.NewIcon(data)
		if err != nil {
			a.log.WithError(err).Warnf("failed to load %s icon", name)
			return nil
		}
		return icon
	}
	a.newGameIcon = makeIcon(icons.NavigationRefresh, "new game")
	a.openIcon = makeIcon(icons.FileFolderOpen, "open")
	a.themeIcon = makeIcon(icons.ImagePalette, "theme")
	a.flagIcon = makeIcon(icons.ContentFlag, "flag")
}

func (a *App) handleInput(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "N", Required: key.ModShortcut},
			key.Filter{Name: "O", Required: key.ModShortcut},
			key.Filter{Name: key.NameF2},
		)
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok || ke.State != key.Press {
			continue
		}
		switch ke.Name {
		case "O":
			a.openLayout()
		default:
			a.restart()
		}
	}

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: &a.clicks,
			Kinds:  pointer.Press | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		pev, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		action := a.clicks.Update(pev)
		if action == ActionNone {
			continue
		}
		pos, ok := a.grid.PositionAtF(pev.Position)
		if !ok {
			continue
		}
		a.apply(action, pos)
	}
}

// apply routes a completed click to the session.
func (a *App) apply(action Action, pos board.Position) {
	switch action {
	case ActionReveal:
		if _, err := a.State.Reveal(pos); err != nil {
			a.log.WithError(err).Error("reveal failed")
		}
	case ActionFlag:
		if _, err := a.State.ToggleFlag(pos); err != nil {
			a.log.WithError(err).Error("flag failed")
		}
	}
	a.invalidate()
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	state := a.State.Snapshot()

	paint.FillShape(gtx.Ops, color.NRGBA{R: 238, G: 241, B: 251, A: 255}, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutTopBar(gtx, state)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.layoutBoard(gtx, state)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutStatus(gtx, state)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutLogPane(gtx, state)
		}),
	)
}

func (a *App) layoutTopBar(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	for _, btn := range a.difficultyBtns {
		for btn.click.Clicked(gtx) {
			a.newGame(btn.difficulty)
		}
	}
	for a.newGameBtn.Clicked(gtx) {
		a.restart()
	}
	for a.openBtn.Clicked(gtx) {
		a.openLayout()
	}
	for a.themeBtn.Clicked(gtx) {
		a.cycleTheme()
	}
	for a.minesBtn.Clicked(gtx) {
		a.State.SetShowMines(!state.ShowMines)
		a.invalidate()
	}

	children := []layout.FlexChild{
		layout.Rigid(material.H6(a.Theme, "Minesweeper").Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{}
		}),
	}
	for _, btn := range a.difficultyBtns {
		btn := btn
		children = append(children,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				b := material.Button(a.Theme, &btn.click, btn.difficulty.String())
				b.Inset = layout.UniformInset(unit.Dp(6))
				if state.Difficulty != btn.difficulty.String() {
					b.Background = color.NRGBA{R: 150, G: 160, B: 190, A: 255}
				}
				return b.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
		)
	}
	minesLabel := "Show Mines"
	if state.ShowMines {
		minesLabel = "Hide Mines"
	}
	children = append(children,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			b := material.Button(a.Theme, &a.minesBtn, minesLabel)
			b.Inset = layout.UniformInset(unit.Dp(6))
			return b.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
		layout.Rigid(a.iconButton(&a.newGameBtn, a.newGameIcon, "New game")),
		layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
		layout.Rigid(a.iconButton(&a.openBtn, a.openIcon, "Open layout")),
		layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
		layout.Rigid(a.iconButton(&a.themeBtn, a.themeIcon, "Switch theme")),
	)

	return layout.Inset{
		Top: unit.Dp(12), Bottom: unit.Dp(4), Left: unit.Dp(16), Right: unit.Dp(16),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

func (a *App) iconButton(click *widget.Clickable, icon *widget.Icon, desc string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		if icon == nil {
			b := material.Button(a.Theme, click, desc)
			b.Inset = layout.UniformInset(unit.Dp(6))
			return b.Layout(gtx)
		}
		b := material.IconButton(a.Theme, click, icon, desc)
		b.Inset = layout.UniformInset(unit.Dp(6))
		b.Size = unit.Dp(20)
		return b.Layout(gtx)
	}
}

// layoutBoard paints every cell from the snapshot and registers the click
// area read by handleInput on the next frame.
func (a *App) layoutBoard(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	size := gtx.Constraints.Max
	b := state.Game.Board
	palette := GetPalette(state.Theme)
	paint.FillShape(gtx.Ops, palette.Background, clip.Rect{Max: size}.Op())
	if b == nil {
		return layout.Dimensions{Size: size}
	}

	a.grid = Grid{
		Origin:   image.Pt(gtx.Dp(unit.Dp(float32(a.Config.OriginX))), gtx.Dp(unit.Dp(float32(a.Config.OriginY)))),
		CellSize: gtx.Dp(unit.Dp(float32(a.Config.CellSize))),
		Width:    b.Width(),
		Height:   b.Height(),
	}

	lost := state.Game.State == game.StateLost
	showMines := state.ShowMines || lost
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			p := board.Pos(x, y)
			c, _ := b.At(p)
			exploded := state.Game.Exploded != nil && *state.Game.Exploded == p
			a.drawCell(gtx, palette, p, c, showMines, exploded)
		}
	}

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, &a.clicks)
	area.Pop()
	return layout.Dimensions{Size: size}
}

func (a *App) drawCell(gtx layout.Context, palette Palette, p board.Position, c board.Cell, showMines, exploded bool) {
	r := a.grid.CellRect(p)
	paint.FillShape(gtx.Ops, palette.GridLine, clip.Rect(r).Op())
	inner := r.Inset(1)
	if inner.Empty() {
		return
	}
	paint.FillShape(gtx.Ops, palette.CellFill(c, showMines, exploded), clip.Rect(inner).Op())

	switch {
	case c.Flagged:
		a.drawIcon(gtx, a.flagIcon, inner.Inset(inner.Dx()/6), palette.FlagIcon)
	case exploded || (c.Mine && showMines && !c.Revealed):
		dot := inner.Inset(inner.Dx() / 4)
		paint.FillShape(gtx.Ops, palette.GridLine, clip.Ellipse(dot).Op(gtx.Ops))
	case c.Revealed && !c.Mine && c.Adjacent > 0:
		a.drawNumeral(gtx, inner, c.Adjacent, palette.NumeralColor(c.Adjacent))
	}
}

func (a *App) drawIcon(gtx layout.Context, icon *widget.Icon, r image.Rectangle, col color.NRGBA) {
	if icon == nil {
		return
	}
	defer op.Offset(r.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(r.Size())
	icon.Layout(gtx, col)
}

func (a *App) drawNumeral(gtx layout.Context, r image.Rectangle, n int, col color.NRGBA) {
	defer op.Offset(r.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(r.Size())

	lbl := material.Label(a.Theme, unit.Sp(float32(a.Config.CellSize)*0.55), fmt.Sprint(n))
	lbl.Color = col
	lbl.Font.Weight = font.Bold
	lbl.Alignment = text.Middle
	lbl.MaxLines = 1
	layout.Center.Layout(gtx, lbl.Layout)
}

func (a *App) layoutStatus(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	gameLabel := fmt.Sprintf("Game: %s", state.Game.State)
	minesLabel := fmt.Sprintf("Mines left: %d", state.Game.MinesRemaining)
	movesLabel := fmt.Sprintf("Moves: %d", state.Game.Moves)
	seedLabel := fmt.Sprintf("Seed: %d", state.Game.Seed)
	difficultyLabel := fmt.Sprintf("Difficulty: %s", state.Difficulty)
	statusLabel := fmt.Sprintf("Status: %s", state.Status)

	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			paint.FillShape(gtx.Ops, color.NRGBA{R: 230, G: 234, B: 244, A: 255}, clip.Rect{Max: gtx.Constraints.Max}.Op())
			return layout.Dimensions{Size: gtx.Constraints.Max}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			inset := layout.Inset{Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(8), Bottom: unit.Dp(8)}
			return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(a.gameStateLabel(gameLabel, state.Game.State)),
					layout.Rigid(layout.Spacer{Width: unit.Dp(18)}.Layout),
					layout.Rigid(material.Body2(a.Theme, minesLabel).Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(18)}.Layout),
					layout.Rigid(material.Body2(a.Theme, movesLabel).Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(18)}.Layout),
					layout.Rigid(material.Body2(a.Theme, difficultyLabel).Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(18)}.Layout),
					layout.Rigid(material.Body2(a.Theme, seedLabel).Layout),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Dimensions{}
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						if state.LastError != nil {
							lbl := material.Body2(a.Theme, fmt.Sprintf("Error: %v", state.LastError))
							lbl.Color = color.NRGBA{R: 200, G: 40, B: 40, A: 255}
							return lbl.Layout(gtx)
						}
						return material.Body2(a.Theme, statusLabel).Layout(gtx)
					}),
				)
			})
		}),
	)
}

func (a *App) gameStateLabel(txt string, st game.State) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		lbl := material.Body1(a.Theme, txt)
		lbl.Font.Weight = font.Bold
		switch st {
		case game.StateWon:
			lbl.Color = color.NRGBA{R: 30, G: 140, B: 60, A: 255}
		case game.StateLost:
			lbl.Color = color.NRGBA{R: 200, G: 40, B: 40, A: 255}
		}
		return lbl.Layout(gtx)
	}
}

func (a *App) layoutLogPane(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	height := gtx.Dp(unit.Dp(120))
	gtx.Constraints.Min.Y = height
	gtx.Constraints.Max.Y = height
	return layout.Inset{
		Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(6), Bottom: unit.Dp(6),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return a.layoutLogs(gtx, state)
	})
}

func (a *App) layoutLogs(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	if len(state.Logs) == 0 {
		lbl := material.Caption(a.Theme, "Logs will appear here.")
		return lbl.Layout(gtx)
	}
	return a.logList.Layout(gtx, len(state.Logs), func(gtx layout.Context, idx int) layout.Dimensions {
		if idx >= len(state.Logs) {
			return layout.Dimensions{}
		}
		lbl := material.Caption(a.Theme, state.Logs[idx])
		lbl.Color = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
		return lbl.Layout(gtx)
	})
}

// invalidate requests a new frame.
func (a *App) invalidate() {
	if a.Window != nil {
		a.Window.Invalidate()
	}
}

func (a *App) newGame(d game.Difficulty) {
	cfg := d.Config()
	cfg.Width, cfg.Height = a.Config.Width, a.Config.Height
	if err := a.State.NewGame(d, cfg, a.seeds.Int63()); err != nil {
		a.log.WithError(err).WithField("difficulty", d.String()).Error("new game failed")
	}
	a.invalidate()
}

func (a *App) restart() {
	if err := a.State.Restart(); err != nil {
		a.log.WithError(err).Error("restart failed")
	}
	a.invalidate()
}

func (a *App) cycleTheme() {
	next := a.State.Theme().Next()
	a.State.SetTheme(next)
	a.Config.Theme = next.String()
	if a.ConfigPath != "" {
		// Only the theme is persisted; a.Config also carries CLI overrides.
		stored, err := config.Load(a.ConfigPath)
		if err == nil {
			stored.Theme = next.String()
			err = config.Save(a.ConfigPath, stored)
		}
		if err != nil {
			a.log.WithError(err).Warn("could not save theme")
		}
	}
	a.invalidate()
}

// openLayout runs the file picker off the event loop; the parsed board is
// applied by drainLoaded.
func (a *App) openLayout() {
	if a.explorer == nil || a.parser == nil {
		return
	}
	go func() {
		// Use empty string to allow all files - some platforms have issues with extension filters
		file, err := a.explorer.ChooseFile("")
		if err != nil {
			if !errors.Is(err, explorer.ErrUserDecline) {
				a.loaded <- loadedLayout{err: fmt.Errorf("file picker: %w", err)}
				a.invalidate()
			}
			return
		}
		defer file.Close()

		name := "layout"
		if f, ok := file.(*os.File); ok {
			name = filepath.Base(f.Name())
		}
		res := loadedLayout{name: name}
		l, err := a.parser.Parse(file)
		if err == nil {
			res.board, err = l.Board()
		}
		res.err = err
		a.loaded <- res
		a.invalidate()
	}()
}

func (a *App) drainLoaded() {
	for {
		select {
		case res := <-a.loaded:
			if res.err != nil {
				a.State.SetError(res.err)
				a.log.WithError(res.err).Error("layout not loaded")
				continue
			}
			a.State.LoadBoard(res.name, res.board)
		default:
			return
		}
	}
}
