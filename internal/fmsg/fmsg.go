// Package fmsg provides various functions for output messages.
package fmsg

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var verbose = new(atomic.Bool)

// Prepare configures the standard logger to prefix messages with name.
func Prepare(name string) { PrepareOutput(name, os.Stderr) }

// PrepareOutput is like [Prepare] but writes messages to w.
func PrepareOutput(name string, w io.Writer) {
	log.SetPrefix(name + ": ")
	log.SetFlags(0)
	log.SetOutput(w)
}

func Load() bool   { return verbose.Load() }
func Store(v bool) { verbose.Store(v) }

func Verbosef(format string, v ...any) {
	if verbose.Load() {
		log.Printf(format, v...)
	}
}

func Verbose(v ...any) {
	if verbose.Load() {
		log.Println(v...)
	}
}
