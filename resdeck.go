// Package resdeck parses reservoir simulation decks in the free-format
// keyword language used by Eclipse-style simulators and derives queryable
// per-cell grid properties from them.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package resdeck

import (
	"context"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'resdeck'.
func tracer() tracing.Trace {
	return tracing.Select("resdeck")
}

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an
// interrupt signal.
var SignalContext context.Context

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}
