package logging

import (
	"fmt"
	"os"
)

// verbose is set from configuration at startup; AT_DEBUG still works
// for one-off runs without touching the config file.
var verbose bool

// SetVerbose enables or disables debug output from configuration
func SetVerbose(v bool) {
	verbose = v
}

// DebugEnabled returns true if debug mode is enabled via configuration
// or the AT_DEBUG environment variable
func DebugEnabled() bool {
	return verbose || os.Getenv("AT_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Printf(format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Println(args...)
	}
}
