// balloons is a terminal quiz: read the hint and pop the balloon that
// carries the matching animal.
//
// Usage:
//
//	balloons play            - Play in this terminal
//	balloons serve           - Start SSH server for remote play
//	balloons subjects        - Print the question bank
//	balloons touch           - List touch strategies
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default from config: 30)
//	--config <path>   - Use a custom config YAML
//	--touch <mode>    - Touch strategy: auto, inline or overlay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import strategies to register them
	_ "github.com/vovakirdan/balloon-quiz/internal/balloon/inline"
	_ "github.com/vovakirdan/balloon-quiz/internal/balloon/overlay"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
	flagTouch  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "balloons",
	Short: "Balloon Quiz - pop the balloon that matches the hint",
	Long: `Balloon Quiz shows a hint about an animal while labelled balloons
drift up the screen. Click the right balloon, or press its number, to
score a point. A wrong pick costs a point, but the score never drops
below zero.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  subjects  - Print the question bank
  touch     - List touch strategies

Examples:
  balloons play
  balloons play --touch inline
  balloons serve --ssh :2222
  balloons subjects`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTouch, "touch", "", "Touch strategy: auto, inline, overlay (empty = from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(touchCmd)
}
