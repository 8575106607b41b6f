// Binary resdeck inspects reservoir simulation decks: it parses a deck
// file and reports the grid properties the deck derives.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/resdeck"
	"github.com/npillmayer/resdeck/resdeck/cli"
)

func main() {
	var stop context.CancelFunc
	resdeck.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli.Execute()
	resdeck.Exit(0)
}
