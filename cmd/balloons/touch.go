package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-quiz/internal/registry"
)

var touchCmd = &cobra.Command{
	Use:   "touch",
	Short: "List touch strategies",
	Long: `Shows the registered touch-capture strategies and which one this
platform uses when touch is set to auto.`,
	Args: cobra.NoArgs,
	Run:  runTouch,
}

func runTouch(_ *cobra.Command, _ []string) {
	strategies := registry.List()
	def := registry.ForPlatform(runtime.GOOS)

	maxNameLen := 4 // "Name" header
	for _, s := range strategies {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, s := range strategies {
		marker := ""
		if s.Name == def {
			marker = fmt.Sprintf(" (default on %s)", runtime.GOOS)
		}
		fmt.Printf("  %-*s  %s%s\n", maxNameLen, s.Name, s.Description, marker)
	}

	fmt.Println()
	fmt.Println("Run 'balloons play --touch <name>' to choose one.")
}
