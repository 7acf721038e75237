// Package main is the entry point for the dungeon generation CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dungeongen",
	Short: "Deterministic dungeon generator",
	Long: `dungeongen procedurally generates 2-D dungeon layouts, encounters,
NPCs, and loot tables, all derived deterministically from a seed. The same
seed and parameters always produce the same dungeon.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(getCmd)
}
