package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "msl",
	Short: "Multi-thumb slider playground",
	Long: `msl drives the multi-thumb slider engine headless or in a Gio window.

Examples:
  msl ui                                   # Launch the interactive demo
  msl replay gesture.msl --thumbs 3        # Feed a gesture script to a slider
  msl inspect --thumbs 4 --width 320       # Show the value/pixel mapping
  msl config show                          # Print the persistent settings`,
	Version: "0.3.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr())
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupLogging points the global logger at a console writer. Loggers
// derived from it afterwards inherit the writer; the global level also
// gates module loggers created at package init.
func setupLogging(w io.Writer) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}
