// Package main provides the entry point for the tdz gateway.
package main

import (
	"fmt"
	"os"

	"github.com/todozi/tdz-gateway/cmd/tdz-gateway/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
