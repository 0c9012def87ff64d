package main

import (
	"os"

	"github.com/proj-sh/proj/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
