// Package debug gates diagnostic logging on SPECREF_DEBUG_* environment
// variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Load    bool
	Resolve bool
	LSP     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("SPECREF_DEBUG_LOAD")
	d.Resolve = boolEnv("SPECREF_DEBUG_RESOLVE")
	d.LSP = boolEnv("SPECREF_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Resolve() bool {
	return d.Resolve
}
func LSP() bool {
	return d.LSP
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
