package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tappy-block/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Load the configuration the way 'play' and 'serve' do, validate it,
and print the result.

Search order:
  --config path
  ~/.tappy/configs/tappy.yaml
  ./configs/tappy.yaml
  built-in defaults

Examples:
  tappy config
  tappy config --config ./my-tappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
