// musou is a terminal arcade shooter: dodge the bombs of descending
// enemies, shoot them down and spend the score on abilities.
//
// Usage:
//
//	musou play              - Play in this terminal
//	musou serve             - Start SSH server for remote play
//	musou list              - List available games
//	musou config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 50)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--config <path> - Use a custom config YAML
//	--debug         - Log debug events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/musou/internal/games/musou"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "musou",
	Short: "Kokaton Musou - an arcade shooter in your terminal",
	Long: `Kokaton Musou is a top-down arcade shooter. Enemies descend from the top
of the arena and drop bombs aimed at you. Shoot them down to earn score, and
spend the score on a shield, invulnerability, an EMP or a gravity field.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  musou play
  musou play --seed 42 --log ./musou.log --debug
  musou serve --ssh :2222
  musou config --config ./my-musou.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		musou.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug events")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the logger for simulation and session events.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
