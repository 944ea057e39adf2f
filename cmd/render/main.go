// Command render writes the dashboard as static files: one index.html per
// locale route, or the JSON of a single figure.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
