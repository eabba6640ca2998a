package main

import (
	"os"

	"github.com/funvibe/swiftkt/cmd/swiftkt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
