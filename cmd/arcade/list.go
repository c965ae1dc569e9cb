package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the registered games with how a run of each one is won.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Run")
	fmt.Printf("  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "---")
	for _, g := range games {
		summary := g.Summary
		if summary == "" {
			summary = "-"
		}
		fmt.Printf("  %-*s  %-*s  %s\n", idW, g.ID, titleW, g.Title, summary)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' in the terminal or 'arcade window <id>' for a desktop window.")
}
