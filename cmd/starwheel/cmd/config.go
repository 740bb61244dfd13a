package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/starwheel/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize configuration",
	Long: `Config prints the effective configuration, or writes the defaults to a
file with --init so they can be edited.

Examples:
  starwheel config
  starwheel config --init starwheel.yaml`,
	RunE: runConfig,
}

var configInit string

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configInit, "init", "", "write default config to this path")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configInit != "" {
		if err := config.Default().SaveToFile(configInit); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", configInit)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
