package main

import (
	"os"

	"github.com/msto63/unitcal/cmd/unitcal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
