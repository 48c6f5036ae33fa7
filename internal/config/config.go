package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/OpenTraceLab/multislider/pkg/slider"
)

func cfgLog() *zerolog.Logger {
	l := log.With().Str("module", "config").Logger()
	return &l
}

// SliderSettings is the persisted form of slider.Config.
type SliderSettings struct {
	Thumbs       int  `json:"thumbs"`
	Min          int  `json:"min"`
	Max          int  `json:"max"`
	Step         int  `json:"step"`
	MinSpacing   int  `json:"min_spacing"`
	DrawApart    bool `json:"draw_apart"`
	MirrorForRTL bool `json:"mirror_for_rtl"`
	TouchSlop    int  `json:"touch_slop"`
	ThumbWidth   int  `json:"thumb_width"`
	ThumbHeight  int  `json:"thumb_height"`
	ThumbOffset  int  `json:"thumb_offset"`
}

// UISettings holds demo window preferences.
type UISettings struct {
	Width    int  `json:"width"`
	Height   int  `json:"height"`
	Dark     bool `json:"dark"`
	RTL      bool `json:"rtl"`
	Padding  int  `json:"padding"` // horizontal slider padding in dp
	LogLines int  `json:"log_lines"`
}

// AppConfig stores persistent application settings
type AppConfig struct {
	LogLevel string         `json:"log_level"`
	Slider   SliderSettings `json:"slider"`
	UI       UISettings     `json:"ui"`
}

// Default returns the settings used when no config file exists.
func Default() *AppConfig {
	sc := slider.DefaultConfig()
	return &AppConfig{
		LogLevel: zerolog.InfoLevel.String(),
		Slider: SliderSettings{
			Thumbs:       sc.Thumbs,
			Min:          sc.Min,
			Max:          sc.Max,
			Step:         sc.Step,
			MinSpacing:   sc.MinSpacing,
			DrawApart:    sc.DrawApart,
			MirrorForRTL: sc.MirrorForRTL,
			TouchSlop:    sc.TouchSlop,
			ThumbWidth:   sc.ThumbStyle.Width,
			ThumbHeight:  sc.ThumbStyle.Height,
			ThumbOffset:  sc.ThumbStyle.Offset,
		},
		UI: UISettings{
			Width:    800,
			Height:   600,
			Dark:     true,
			Padding:  16,
			LogLines: 200,
		},
	}
}

// SliderConfig converts the persisted settings into a validated
// slider.Config.
func (c *AppConfig) SliderConfig() (*slider.Config, error) {
	s := c.Slider
	sc := &slider.Config{
		Thumbs:       s.Thumbs,
		Min:          s.Min,
		Max:          s.Max,
		Step:         s.Step,
		MinSpacing:   s.MinSpacing,
		DrawApart:    s.DrawApart,
		MirrorForRTL: s.MirrorForRTL,
		TouchSlop:    s.TouchSlop,
		ThumbStyle:   slider.Style{Width: s.ThumbWidth, Height: s.ThumbHeight, Offset: s.ThumbOffset},
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("config: slider section: %w", err)
	}
	return sc, nil
}

// Level parses LogLevel, falling back to info.
func (c *AppConfig) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Path returns the path to the config file, creating its directory.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	var configDir string
	if appData := os.Getenv("APPDATA"); appData != "" {
		// Windows: use %APPDATA%\MultiSlider
		configDir = filepath.Join(appData, "MultiSlider")
	} else {
		configDir = filepath.Join(homeDir, ".config", "multislider")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load loads the application configuration from Path.
func Load() (*AppConfig, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration stored at path. A missing file yields
// the defaults. Fields absent from the file keep their default values.
func LoadFrom(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfgLog().Debug().Str("path", path).Msg("no config file, using defaults")
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := sonic.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if _, err := cfg.SliderConfig(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save saves the application configuration to Path.
func Save(cfg *AppConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes cfg to path as indented JSON.
func SaveTo(path string, cfg *AppConfig) error {
	data, err := sonic.ConfigStd.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	cfgLog().Debug().Str("path", path).Msg("config saved")
	return nil
}
