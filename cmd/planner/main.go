// Command planner resolves colony production requirements from a catalog
// file without running the HTTP service.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(CLIExitError)
	}
}
