// Command curvegen generates curves from control polygons.
//
// Usage:
//
//	curvegen gen [-a algorithm] [-n iterations] [-f text|yaml|svg] [file]
//	curvegen compare [-n iterations] [file]
//	curvegen list
//
// Control points are read from file, or from standard input if no file is
// given, as YAML, JSON or whitespace-separated text. Settings can also be
// given in a gcfg file with -c; flags take precedence over the file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "curvegen:", err)
		os.Exit(1)
	}
}
