package main

import (
	"os"

	"github.com/osmosis-labs/bindings/cmd/venue/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
