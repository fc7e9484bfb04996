package ui

import (
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/sirupsen/logrus"

	"github.com/OpenTraceLab/OpenTraceSweeper/internal/config"
)

// Options configures the game window.
type Options struct {
	Config     *config.Config
	ConfigPath string
	Logger     *logrus.Logger
}

// Run launches the Gio UI and blocks until the window closes.
func Run(state *AppState, opts Options) error {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("Minesweeper"),
			app.Size(unit.Dp(float32(opts.Config.WindowWidth)), unit.Dp(float32(opts.Config.WindowHeight))),
		)
		opts.Logger.AddHook(&logPaneHook{state: state, notify: w.Invalidate})

		ui := New(w, state, opts.Config, opts.Logger)
		ui.ConfigPath = opts.ConfigPath
		if err := ui.Run(); err != nil {
			opts.Logger.WithError(err).Error("ui stopped")
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
