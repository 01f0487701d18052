package main

import (
	"os"

	"github.com/localetree/localetree/cmd/localetree/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
