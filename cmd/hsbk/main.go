package main

import (
	"os"

	"github.com/dokzlo13/hsbk/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
