// tappy is Tappy Block, a one-button arcade game for the terminal.
//
// Usage:
//
//	tappy play               - Play in this terminal
//	tappy serve              - Start SSH server for remote play
//	tappy config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible obstacles
//	--config <path>     - Use a custom YAML configuration
//	--log-level <name>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tappy",
	Short: "Tappy Block - a one-button arcade game in your terminal",
	Long: `Tappy Block: keep the falling block alive by tapping it upward through
the gaps of endless obstacles. Score is the number of seconds survived.

One input does everything: press Space (or Enter, or click) to start,
to jump while playing, and to return to the start screen after a crash.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  tappy play
  tappy play --config ./configs/tappy.yaml
  tappy serve --ssh :2222
  tappy config > ~/.tappy/configs/tappy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
