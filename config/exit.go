package config

import (
	"fmt"
	"io"
	"os"
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Exitf prints a failed run's message on stderr and ends the process with
// status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exit(1)
}
