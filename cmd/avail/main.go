// Command avail is a harness for the execution core: it builds small
// demo programs directly against the L1 generator (there is no
// surface-syntax front end in this core) and runs them through the
// fiber scheduler and interpreter, optionally disassembling them or
// recording an execution trace.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/availcore/avail/internal/config"
	"github.com/availcore/avail/internal/dispatch"
	"github.com/availcore/avail/internal/fiber"
	"github.com/availcore/avail/internal/interp"
	"github.com/availcore/avail/internal/l1"
	"github.com/availcore/avail/internal/obslog"
	"github.com/availcore/avail/internal/object"
	"github.com/availcore/avail/internal/primitive"
	"github.com/availcore/avail/internal/trace"

	"github.com/mattn/go-isatty"
)

func usage() {
	fmt.Fprintf(os.Stderr, `avail %s - execution core harness

Usage:
  avail run [-trace file] [-v]     run the send-demo program to completion
  avail disasm                     print L1 disassembly of the demo programs
  avail primitives                 list the registered primitive descriptors
  avail version                    print the version and exit
`, config.Version)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "disasm":
		cmdDisasm(os.Args[2:])
	case "primitives":
		cmdPrimitives(os.Args[2:])
	case "version":
		fmt.Println(config.Version)
	case "-help", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "avail: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	tracePath := fs.String("trace", "", "record an execution trace to this SQLite file")
	verbose := fs.Bool("v", false, "log the fiber's final state (only when stdout is a terminal)")
	fs.Parse(args)

	bundles := dispatch.NewRegistry()
	buildIdentityFunction(bundles, "identity")
	fn := buildSendDemoFunction("identity")

	prims := primitive.NewRegistry()
	primitive.RegisterBootstrap(prims)

	in := interp.New(bundles, prims)

	if *tracePath != "" {
		journal, err := trace.Open(*tracePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "avail: opening trace journal: %s\n", err)
			os.Exit(1)
		}
		defer journal.Close()
		in.Journal = journal
	}

	f := fiber.New(128)
	f.Name = "main"
	f.TraceEnabled = *tracePath != ""
	f.Continuation = object.NewContinuation(fn, 0, nil, nil)

	var result object.Value
	var failure error
	f.OnResult = func(v object.Value) { result = v }
	f.OnFailure = func(err error) { failure = err }

	sched := fiber.NewScheduler(1, func(f *fiber.Fiber) fiber.State {
		return in.Run(context.Background(), f)
	})
	sched.Start()
	defer sched.Stop()

	sched.Schedule(f)
	f.Wait()

	if isColorTerminal() && *verbose {
		obslog.Default.Info("fiber %s reached %s", f.Name, f.State())
	}

	if failure != nil {
		fmt.Fprintf(os.Stderr, "avail: run failed: %s\n", failure)
		os.Exit(1)
	}
	fmt.Println(result.Inspect())
}

func cmdDisasm(args []string) {
	fs := flag.NewFlagSet("disasm", flag.ExitOnError)
	fs.Parse(args)

	bundles := dispatch.NewRegistry()
	buildIdentityFunction(bundles, "identity")
	sendFn := buildSendDemoFunction("identity")
	constFn := buildConstFunction("answer", object.IntValue(42))

	b, err := bundles.Lookup("identity", 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "avail: %s\n", err)
		os.Exit(1)
	}
	identityCode := b.Definitions[0].Body.Code

	fmt.Print(l1.Disassemble(identityCode.Nybbles, identityCode.Name))
	fmt.Print(l1.Disassemble(sendFn.Code.Nybbles, sendFn.Code.Name))
	fmt.Print(l1.Disassemble(constFn.Code.Nybbles, constFn.Code.Name))
}

func cmdPrimitives(args []string) {
	fs := flag.NewFlagSet("primitives", flag.ExitOnError)
	fs.Parse(args)

	descs, err := config.LoadPrimitiveDescriptors()
	if err != nil {
		fmt.Fprintf(os.Stderr, "avail: %s\n", err)
		os.Exit(1)
	}
	for _, d := range descs {
		fmt.Printf("%3d  %-24s %v\n", d.Number, d.Name, d.Flags)
	}
}

// isColorTerminal decides whether progress output should include
// status lines meant for an interactive session, the same way the
// teacher decides whether to emit color escapes (internal/evaluator's
// detectColorLevel): only when stdout is a real terminal, never when
// piped.
func isColorTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
