package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tappy-block/internal/config"
	"github.com/vovakirdan/tappy-block/internal/core"
	"github.com/vovakirdan/tappy-block/internal/platform/tui"
	"github.com/vovakirdan/tappy-block/internal/tappy"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tappy Block in this terminal",
	Long: `Start Tappy Block on the start screen.

Controls:
  Space/Enter/Click  - Start, jump, or restart after game over
  Q/Ctrl+C           - Quit

The high score is kept until you quit.

Examples:
  tappy play
  tappy play --fps 30
  tappy play --seed 42
  tappy play --log-file tappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := fileLogger(flagLogFile, "tappy", flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Get terminal size
	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	machine, err := tappy.New(cfg, tappy.NewSource(runtime.Seed))
	if err != nil {
		return err
	}

	logger.Debug("starting", "screen", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH), "fps", runtime.TickRate)
	if err := tui.Run(machine, runtime, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("exited", "high_score", machine.HighScore())
	return nil
}
