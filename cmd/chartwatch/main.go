// Command chartwatch tracks FAA airport diagram changes across AIRAC
// cycles: it downloads diagram PDFs, turns page dumps into extraction
// snapshots, and reports what changed between cycles.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
