package ui

import (
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/rs/zerolog/log"

	"github.com/OpenTraceLab/multislider/internal/config"
)

// Run launches the Gio UI and blocks until the window closes.
func Run(state *AppState, cfg *config.AppConfig) error {
	if cfg == nil {
		cfg = config.Default()
	}
	if state == nil {
		state = NewStateFromConfig(cfg)
	}

	w := new(app.Window)
	w.Option(app.Title("Multi-thumb Slider"), app.Size(unit.Dp(cfg.UI.Width), unit.Dp(cfg.UI.Height)))
	ui, err := New(w, state, cfg)
	if err != nil {
		return err
	}

	go func() {
		if err := ui.Run(); err != nil {
			log.Error().Err(err).Str("module", "ui").Msg("window closed with error")
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
