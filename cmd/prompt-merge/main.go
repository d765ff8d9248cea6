package main

import (
	"os"

	"github.com/ireland-samantha/prompt-merge/cmd/prompt-merge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
