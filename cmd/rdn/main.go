package main

import (
	"os"

	"github.com/rdnfmt/rdn/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
