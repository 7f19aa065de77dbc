package main

import (
	"os"

	"github.com/rustyeddy/lifesim/cmd/lifesim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
