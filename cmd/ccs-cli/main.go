// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"ccs/internal/bisim"
	cerr "ccs/internal/errors"
	"ccs/internal/lower"
)

func main() {
	var (
		printProgram = flag.Bool("ccs", false, "print the elaborated CCS program")
		printLts     = flag.Bool("lts", false, "print the derived LTS transitions")
		printBisim   = flag.Bool("bisim", false, "print the LTS's self-bisimulation")
		printWeak    = flag.Bool("weak", false, "print the LTS's weak (tau-closed) self-bisimulation")
		printStats   = flag.Bool("stats", false, "print state/action/transition counts")
		printValues  = flag.Bool("values", false, "print every type's value universe (.ccsvp only)")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ccs-cli [flags] <file.ccs|file.ccsvp>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	res, err := lower.Pipeline(path)
	if err != nil {
		report(path, err)
		os.Exit(1)
	}

	any := *printProgram || *printLts || *printBisim || *printWeak || *printStats || *printValues
	if !any {
		printProgram, printLts, printBisim = boolPtr(true), boolPtr(true), boolPtr(true)
	}

	if *printProgram {
		fmt.Print(lower.RenderProgram(res.CCS))
	}
	if *printLts {
		fmt.Println("Transitions:")
		fmt.Print(lower.RenderTransitions(res.Lts))
	}
	if *printBisim {
		fmt.Println("Bisimulation:")
		fmt.Print(lower.RenderBisimulation(res.Bisim))
	}
	if *printWeak {
		weak := res.Lts.Weaken()
		rel, _ := bisim.Bisimilar(weak, weak)
		fmt.Println("Weak bisimulation:")
		fmt.Print(lower.RenderBisimulation(rel))
	}
	if *printStats {
		stats := lower.Summarize(res.Lts)
		fmt.Printf("States: %d\nActions: %d\nTransitions: %d\n", stats.States, stats.Actions, stats.Transitions)
	}
	if *printValues {
		if res.Values == nil {
			color.Yellow("no value universe: %s is plain CCS", path)
		} else {
			fmt.Print(lower.RenderValues(res.Values))
		}
	}

	if !res.BisimOK {
		color.Red("LTS is not fully covered by its own bisimulation (unreachable or divergent states)")
	}
}

func boolPtr(v bool) *bool { return &v }

func report(path string, err error) {
	fatal, ok := err.(*cerr.Fatal)
	if !ok {
		color.Red("error: %s", err)
		return
	}
	source, readErr := os.ReadFile(path)
	if readErr != nil {
		color.Red("%s", fatal.Error())
		return
	}
	cerr.Print(path, string(source), fatal)
}
