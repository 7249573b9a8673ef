package main

import (
	"os"

	"github.com/warp/statutory-engine/cmd/statcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
