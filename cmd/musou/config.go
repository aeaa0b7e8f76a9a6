package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/musou/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a new session would use, as YAML.

Search order:
  --config <path> -> ~/.musou/configs/musou.yaml -> ./configs/musou.yaml -> built-in defaults

The output is a complete config file and can be edited and passed back
with --config.

Examples:
  musou config
  musou config --defaults > ~/.musou/configs/musou.yaml
  musou config --config ./my-musou.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := config.DefaultMusouConfig()
	if !flagDefaults {
		var err error
		if cfg, err = config.LoadMusou(flagConfig); err != nil {
			return err
		}
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
