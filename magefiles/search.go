//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Search builds the CLI and runs a PubMed query from the QUERY env var.
// OUTPUT (optional) names a file to write instead of stdout.
func Search() error {
	query := os.Getenv("QUERY")
	if query == "" {
		return fmt.Errorf("set QUERY, e.g. QUERY='cancer immunotherapy' mage search")
	}
	mg.Deps(Build)

	args := []string{"search", query, "--debug"}
	if out := os.Getenv("OUTPUT"); out != "" {
		args = append(args, "--file", out)
	}
	fmt.Printf("[search] %s\n", query)
	return sh.RunV(filepath.Join(binDir, binName), args...)
}
