// Command pipegrid solves pipe-network scenarios from the command line.
package main

import (
	"os"

	"pipegrid/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
