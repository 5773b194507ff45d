package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-cli/internal/cmd"
)

// main - is the entry point of the application. It runs the root command and exits with 1 on failure.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := cmd.Root().Execute(); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}
