// Command codesmith generates complete project scaffolds from a
// plain-text description.
package main

import (
	"os"

	"github.com/codesmith-ai/codesmith/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
