package main

import (
	"os"

	"github.com/warp/takehome-engine/cmd/takehome/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
