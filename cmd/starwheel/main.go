package main

import (
	"os"

	"github.com/rustyeddy/starwheel/cmd/starwheel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
