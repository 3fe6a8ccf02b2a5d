package main

import (
	"os"

	"github.com/msto63/lanpy/cmd/lanpy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
