package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-quiz/internal/quiz"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "Print the question bank",
	Long:  `Shows every subject in play order with the hint the player sees.`,
	Args:  cobra.NoArgs,
	Run:   runSubjects,
}

func runSubjects(_ *cobra.Command, _ []string) {
	bank := quiz.DefaultBank()

	maxNameLen := 4 // "Name" header
	for _, s := range bank.Subjects() {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Printf("  #  %-*s  %s\n", maxNameLen, "Name", "Hint")
	fmt.Printf("  -  %-*s  %s\n", maxNameLen, "----", "----")
	for i, s := range bank.Subjects() {
		fmt.Printf("  %d  %-*s  %s\n", i+1, maxNameLen, s.Name, s.Hint)
	}
}
