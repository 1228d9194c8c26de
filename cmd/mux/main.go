// Command mux spawns one PTY-attached child per token read from an
// argument stream and multiplexes their I/O into a single tabbed terminal
// UI, routing keystrokes and mouse events to all children or to the
// focused one.
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
