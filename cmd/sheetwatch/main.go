// Package main provides the sheetwatch CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/sheetwatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
