package main

import (
	"fmt"
	"os"

	"github.com/harrison/aoc/internal/cmd"
	_ "github.com/harrison/aoc/internal/solutions"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
