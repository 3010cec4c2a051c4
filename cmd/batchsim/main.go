package main

import (
	"os"

	"github.com/landau-swap/landau/cmd/batchsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
