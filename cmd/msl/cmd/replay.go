package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/multislider/pkg/slider"
	"github.com/OpenTraceLab/multislider/pkg/touchscript"
)

var replayFlags sliderFlags

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Feed a gesture script to a headless slider",
	Long: `Replay a gesture script against a slider hosted by a simulated view.
Every value and tracking change is printed as it happens, followed by the
final thumb table.

Examples:
  msl replay gesture.msl
  msl replay --thumbs 3 --step 5 gesture.msl
  msl replay -v --config ~/.config/multislider/config.json gesture.msl`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayFlags.register(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	filename := args[0]
	out := cmd.OutOrStdout()

	parser, err := touchscript.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	script, err := parser.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}

	cfg, err := replayFlags.config(cmd)
	if err != nil {
		return err
	}
	host := script.Host()
	s, err := slider.New(cfg, host)
	if err != nil {
		return err
	}
	s.SetLogger(log.With().Str("module", "slider").Logger())

	step := 0
	report := &slider.EventHandler{Handle: func(ev slider.ChangeEvent) {
		origin := "api"
		if ev.FromUser {
			origin = "user"
		}
		fmt.Fprintf(out, "  [%d] %-5s thumb %d = %d (%s)\n", step, ev.Kind, ev.Index, ev.Value, origin)
	}}
	s.SetValueChangeHandler(report)
	s.SetTrackingHandler(report)

	fmt.Fprintf(out, "Replaying %s: %d events on a %dx%d view\n", filename, len(script.Events), script.Setup.Width, script.Setup.Height)
	for i, ev := range script.PointerEvents() {
		step = script.Events[i].Line
		log.Debug().Int("line", step).Stringer("action", ev.Action).Int("pointer", int(ev.Pointer)).Msg("event")
		s.HandleEvent(ev)
	}

	fmt.Fprintf(out, "\nGestures claimed: %d\n\n", host.Claims())
	printThumbTable(out, s)
	return nil
}
