package main

import (
	"os"

	"github.com/jamesainslie/go-textkit/cmd/textkit-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
