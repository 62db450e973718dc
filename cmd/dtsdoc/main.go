package main

import (
	"os"

	"github.com/toyz/dtsdoc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
