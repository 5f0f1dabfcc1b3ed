package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/balloon-quiz/internal/core"
	"github.com/vovakirdan/balloon-quiz/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a quiz session in the current terminal.

Controls:
  Click / 1-9    - Pick a balloon
  Enter/Space    - Next question, or Play Again at the end
  R              - Restart from the first question
  ?              - Toggle full help
  Q/Ctrl+C       - Quit

Examples:
  balloons play
  balloons play --touch overlay
  balloons play --log ./balloons.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := gameFactory(cfg)()
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	logger.Info("session started", "touch", game.Strategy().Name(), "fps", cfg.TickRate)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
	}

	if err := tui.Run(game, rc, logger); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("session ended", "score", game.State().Score, "over", game.State().GameOver)
	return nil
}

// openLogger returns a debug logger writing to path, or discarding
// everything when path is empty. Logging to stderr would draw over the
// alternate screen. The closer must be closed once play ends.
func openLogger(path string) (*log.Logger, io.Closer, error) {
	var out io.WriteCloser = nopCloser{io.Discard}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "balloons",
		Level:           log.DebugLevel,
	})
	return logger, out, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
