package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := createNewRootCommand(defaultRootOptions()).Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}
