package ux

import (
	"fmt"
	"path/filepath"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Report prints the success listing: every extracted file and a build hint.
func Report(projectDir string, names []string) {
	fmt.Printf("\n%s%s✓ Extracted %d source file(s)%s\n\n", Bold, Green, len(names), Reset)
	for _, n := range names {
		fmt.Printf("    %s%s%s\n", Cyan, filepath.Join(projectDir, "src", n), Reset)
	}
	fmt.Printf("\n  Build with:\n")
	fmt.Printf("    %scd %s && cmake .. && make%s\n\n", Cyan, filepath.Join(projectDir, "build"), Reset)
}

// NoFiles prints the zero-extraction note. Extracting nothing is a normal
// negative result, not an error.
func NoFiles(doc string) {
	fmt.Printf("%sno files extracted from %s%s\n", Dim, doc, Reset)
}
