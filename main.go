package main

import (
	"os"

	"github.com/mintlab-dev/crmseed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
