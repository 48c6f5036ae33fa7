package cmd

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/multislider/internal/config"
	"github.com/OpenTraceLab/multislider/pkg/slider"
)

// sliderFlags are the slider construction flags shared by replay and inspect.
type sliderFlags struct {
	configPath string
	thumbs     int
	min        int
	max        int
	step       int
	spacing    int
	drawApart  bool
}

func (f *sliderFlags) register(c *cobra.Command) {
	def := slider.DefaultConfig()
	c.Flags().StringVarP(&f.configPath, "config", "c", "", "read slider settings from a config file")
	c.Flags().IntVarP(&f.thumbs, "thumbs", "n", def.Thumbs, "number of thumbs")
	c.Flags().IntVar(&f.min, "min", def.Min, "scale minimum")
	c.Flags().IntVar(&f.max, "max", def.Max, "scale maximum")
	c.Flags().IntVar(&f.step, "step", def.Step, "value step")
	c.Flags().IntVar(&f.spacing, "spacing", def.MinSpacing, "minimum spacing between thumbs, in steps")
	c.Flags().BoolVar(&f.drawApart, "draw-apart", def.DrawApart, "draw thumbs with equal values side by side")
}

// config builds the slider configuration: the config file when given, then
// every flag set on the command line on top of it.
func (f *sliderFlags) config(c *cobra.Command) (*slider.Config, error) {
	app := config.Default()
	if f.configPath != "" {
		var err error
		if app, err = config.LoadFrom(f.configPath); err != nil {
			return nil, err
		}
	}
	sc, err := app.SliderConfig()
	if err != nil {
		return nil, err
	}

	flags := c.Flags()
	if f.configPath == "" || flags.Changed("thumbs") {
		sc.Thumbs = f.thumbs
	}
	if f.configPath == "" || flags.Changed("min") {
		sc.Min = f.min
	}
	if f.configPath == "" || flags.Changed("max") {
		sc.Max = f.max
	}
	if f.configPath == "" || flags.Changed("step") {
		sc.Step = f.step
	}
	if f.configPath == "" || flags.Changed("spacing") {
		sc.MinSpacing = f.spacing
	}
	if f.configPath == "" || flags.Changed("draw-apart") {
		sc.DrawApart = f.drawApart
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func formatRect(r image.Rectangle) string {
	if r.Empty() {
		return "-"
	}
	return fmt.Sprintf("%d,%d-%d,%d", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// printThumbTable writes one row per thumb with its value, limits and
// geometry.
func printThumbTable(w io.Writer, s *slider.Slider) {
	fmt.Fprintf(w, "Scale %d..%d  step %d  spacing %d  track %s\n",
		s.ScaleMin(), s.ScaleMax(), s.Step(), s.MinSpacing(), formatRect(s.TrackBounds()))
	fmt.Fprintln(w, strings.Repeat("─", 78))
	fmt.Fprintf(w, "%-3s %-10s %6s %11s %6s  %-16s %-16s\n", "#", "Tag", "Value", "Limits", "Pixel", "Thumb", "Range")
	fmt.Fprintln(w, strings.Repeat("─", 78))
	for i, t := range s.Thumbs() {
		fmt.Fprintf(w, "%-3d %-10s %6d %11s %6d  %-16s %-16s\n",
			i, t.Tag(), t.Value(),
			fmt.Sprintf("%d..%d", t.Min(), t.Max()),
			s.ValueToPixel(t.Value()),
			formatRect(s.ThumbBounds(i)),
			formatRect(s.RangeBounds(i)))
	}
}
