package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/spacetris/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the built-in configuration file. Save it as
~/.spacetris/config.yaml and edit it to change the defaults.

With --effective, print the configuration actually loaded
(after --config and the search path are applied).`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded configuration instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
