// Package main provides the ws command.
package main

import (
	"os"

	"github.com/leapstack-labs/workspace/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
