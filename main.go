package main

import (
	"os"

	"github.com/sproutedu/sprout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
