package main

import (
	"os"

	"github.com/cybercalc/cybercalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
