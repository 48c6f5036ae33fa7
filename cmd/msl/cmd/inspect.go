package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/multislider/pkg/slider"
)

var (
	inspectFlags   sliderFlags
	inspectWidth   int
	inspectHeight  int
	inspectPadding int
	inspectRTL     bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show how values map to pixels",
	Long: `Build a slider on a simulated view and print every thumb's value,
pixel position, thumb bounds and range bounds.

Examples:
  msl inspect
  msl inspect --thumbs 4 --width 320
  msl inspect --rtl --draw-apart --thumbs 3 --min 0 --max 0`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectFlags.register(inspectCmd)

	inspectCmd.Flags().IntVarP(&inspectWidth, "width", "w", 400, "view width in pixels")
	inspectCmd.Flags().IntVar(&inspectHeight, "height", 48, "view height in pixels")
	inspectCmd.Flags().IntVarP(&inspectPadding, "padding", "p", 16, "horizontal padding in pixels")
	inspectCmd.Flags().BoolVar(&inspectRTL, "rtl", false, "lay the view out right to left")
}

func runInspect(cmd *cobra.Command, args []string) error {
	if inspectWidth <= 0 || inspectHeight <= 0 {
		return fmt.Errorf("view size %dx%d must be positive", inspectWidth, inspectHeight)
	}
	cfg, err := inspectFlags.config(cmd)
	if err != nil {
		return err
	}

	host := slider.NewSimHost(inspectWidth, inspectHeight)
	host.Pad = slider.Insets{Left: inspectPadding, Right: inspectPadding}
	host.RightToLeft = inspectRTL
	s, err := slider.New(cfg, host)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dir := "ltr"
	if inspectRTL {
		dir = "rtl"
	}
	fmt.Fprintf(out, "View %dx%d  padding %d  %s\n", inspectWidth, inspectHeight, inspectPadding, dir)
	printThumbTable(out, s)

	fmt.Fprintln(out, "\nPixel -> value:")
	track := s.TrackBounds()
	for i := 0; i <= 4; i++ {
		x := track.Min.X + (track.Dx()*i+2)/4
		fmt.Fprintf(out, "  x=%-5d %d\n", x, s.PositionToValue(x))
	}
	return nil
}
