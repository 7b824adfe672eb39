// Command hookcore-demo runs one of hookcore's worked examples, each
// mirroring one of the original sighook crate's examples under
// original_source/examples.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xyproto/hookcore"
)

var examples = map[string]func() error{
	"patchcode":               demoPatchcode,
	"instrument":              demoInstrument,
	"instrument-no-original":  demoInstrumentNoOriginal,
	"unhook":                  demoUnhook,
	"inline-hook-far":         demoInlineHookFar,
	"inline-hook-signal":      demoInlineHookSignal,
	"adrp":                    demoADRP,
}

func main() {
	exampleFlag := flag.String("example", "", "which worked example to run (see -list)")
	listFlag := flag.Bool("list", false, "list available examples and exit")
	verboseFlag := flag.Bool("v", false, "verbose mode (hookcore diagnostics to stderr)")
	verboseLongFlag := flag.Bool("verbose", false, "verbose mode (hookcore diagnostics to stderr)")
	flag.Parse()

	if *verboseFlag || *verboseLongFlag {
		hookcore.Verbose = true
	}

	if *listFlag || *exampleFlag == "" {
		fmt.Println("available examples:")
		for name := range examples {
			fmt.Println("  " + name)
		}
		if *exampleFlag == "" && !*listFlag {
			os.Exit(1)
		}
		return
	}

	run, ok := examples[*exampleFlag]
	if !ok {
		fmt.Fprintf(os.Stderr, "hookcore-demo: unknown example %q, see -list\n", *exampleFlag)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hookcore-demo: %v\n", err)
		os.Exit(1)
	}
}
