// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Command csatab tabulates a small, fixed connection-set expression
// to stdout, as a worked example of wiring the csa package together.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/csa-go/csa/csa"
	"github.com/csa-go/csa/mask"
	"github.com/csa-go/csa/must"
	"github.com/csa-go/csa/value"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("csatab: ")
	must.Func = func(v ...interface{}) { log.Fatal(v...) }

	weight := flag.Float64("weight", 1.0, "constant weight attached to every connection")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `usage: csatab [-weight W]

csatab tabulates cross((0,7),(8,15)) * full, a connection set from
every index in [0,7] to every index in [8,15], each carrying weight W.
`)
		os.Exit(2)
	}
	flag.Parse()

	sources, err := csa.Ival(0, 7)
	must.Nilf(err, "sources")
	targets, err := csa.Ival(8, 15)
	must.Nilf(err, "targets")

	m := must.FiniteMask(mask.Intersect(csa.Cross(sources, targets), csa.Full), "cross((0,7),(8,15)) * full")
	c := csa.CSet(m, value.Const(*weight))

	must.Nilf(csa.Tabulate(c, os.Stdout), "tabulate")
}
