package cmd

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/multislider/internal/config"
)

var configFile string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or save the persistent settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as JSON",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the effective settings back to the config file",
	Long: `Write the effective settings to the config file. A missing file is
created with the defaults, which makes this the way to start editing one.`,
	Args: cobra.NoArgs,
	RunE: runConfigSave,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSaveCmd)
	configCmd.PersistentFlags().StringVarP(&configFile, "file", "f", "", "config file (default: user config dir)")
}

func configTarget() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.Path()
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := configTarget()
	if err != nil {
		return err
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	data, err := sonic.ConfigStd.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s\n", path, data)
	return nil
}

func runConfigSave(cmd *cobra.Command, args []string) error {
	path, err := configTarget()
	if err != nil {
		return err
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	if err := config.SaveTo(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	return nil
}
