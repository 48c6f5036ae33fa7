package cmd

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/multislider/internal/config"
	"github.com/OpenTraceLab/multislider/internal/ui"
)

var recordPath string

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive slider demo",
	Long: `Launch a Gio window with a few sliders inside a scrolling list.
Gestures can be recorded to a script and replayed later with "msl replay".

Examples:
  # Launch the UI
  msl ui

  # Record gestures to a fixed file instead of asking
  msl ui --record gesture.msl`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringVarP(&recordPath, "record", "r", "", "write recorded gestures to this file")
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("config not loaded, using defaults")
		cfg = config.Default()
	}
	if !verbose {
		zerolog.SetGlobalLevel(cfg.Level())
	}

	state := ui.NewStateFromConfig(cfg)
	state.SetAppVersion(rootCmd.Version)
	state.SetRecordPath(recordPath)
	state.SetStatus("Ready")

	// log lines go to the terminal and to the in-app log pane
	pane := zerolog.ConsoleWriter{Out: state, NoColor: true, TimeFormat: "15:04:05"}
	console := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"}
	log.Logger = zerolog.New(io.MultiWriter(console, pane)).With().Timestamp().Logger()
	log.Info().Str("version", rootCmd.Version).Msg("UI starting")

	return ui.Run(state, cfg)
}
