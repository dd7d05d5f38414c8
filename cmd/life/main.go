// Command life runs Conway's Game of Life in a terminal or renders it to
// PNG.
package main

import (
	"fmt"
	"os"

	"tiny-life/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		exitf("life: %v", err)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		exitf("life: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
