package main

import (
	"os"

	"github.com/cwbudde/go-rinha/cmd/rinha/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
