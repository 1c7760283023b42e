// Command bmatch runs the disjoint b-matching and proper edge coloring
// heuristics against a KONECT-format weighted graph file.
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	root := newRootCommand()
	root.Version = version
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
