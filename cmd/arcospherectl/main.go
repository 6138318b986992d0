// Command arcospherectl is a thin CLI wrapper around solve, verify and
// schedule: it parses canonical text (spec.md §6), calls the library,
// and prints canonical text or CBOR back. It never implements solver
// semantics itself.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/arcosphere-go/catalyst/internal/wire"
	"github.com/arcosphere-go/catalyst/pathfmt"
	"github.com/arcosphere-go/catalyst/problem"
	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/schedule"
	"github.com/arcosphere-go/catalyst/solve"
	"github.com/arcosphere-go/catalyst/token"
	"github.com/arcosphere-go/catalyst/verify"
)

// Exit codes (spec.md §6): 0 success, 1 invalid path or no solution,
// 2 caps exceeded, 3 malformed input.
const (
	exitOK             = 0
	exitNoSolution     = 1
	exitCapsExceeded   = 2
	exitMalformedInput = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: arcospherectl <solve|verify|schedule> [flags]")
		return exitMalformedInput
	}

	switch args[0] {
	case "solve":
		return runSolve(args[1:])
	case "verify":
		return runVerify(args[1:])
	case "schedule":
		return runSchedule(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
		return exitMalformedInput
	}
}

func runSolve(args []string) int {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	source := fs.String("source", "", "source multiset, e.g. EP")
	target := fs.String("target", "", "target multiset, e.g. LX")
	maxCatalystSize := fs.Int("max-catalyst-size", 4, "catalyst enumeration cap")
	maxDepth := fs.Int("max-depth", 64, "BFS depth cap")
	maxNodes := fs.Int("max-nodes", 1_000_000, "BFS frontier node cap")
	repetitions := fs.Int("repetitions", 1, "problem multiplier n")
	parallel := fs.Bool("parallel", false, "permit worker fan-out")
	binary := fs.Bool("binary", false, "print CBOR instead of canonical text")
	if err := fs.Parse(args); err != nil {
		return exitMalformedInput
	}

	src, err := token.Parse(*source)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid source:", err)
		return exitMalformedInput
	}
	tgt, err := token.Parse(*target)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid target:", err)
		return exitMalformedInput
	}

	recipes := recipe.DefaultRecipes()
	sol, err := solve.Solve(src, tgt, recipes,
		solve.WithMaxCatalystSize(*maxCatalystSize),
		solve.WithMaxDepth(*maxDepth),
		solve.WithMaxNodes(*maxNodes),
		solve.WithRepetitions(*repetitions),
		solve.WithParallel(*parallel),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "solve:", err)
		if isCapError(err) {
			return exitCapsExceeded
		}
		if errors.Is(err, problem.ErrBadRepetitions) {
			return exitMalformedInput
		}
		return exitNoSolution
	}

	if *binary {
		b, encErr := wire.EncodeSolution(sol)
		if encErr != nil {
			fmt.Fprintln(os.Stderr, "encode:", encErr)
			return exitMalformedInput
		}
		os.Stdout.Write(b)
		return exitOK
	}

	for _, g := range sol.Groups {
		for _, p := range g.Paths {
			fmt.Println(pathfmt.FormatPath(src, tgt, *repetitions, g.Catalyst, p))
		}
	}
	return exitOK
}

func runVerify(args []string) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	text := fs.String("path", "", "canonical path text")
	if err := fs.Parse(args); err != nil {
		return exitMalformedInput
	}

	recipes := recipe.DefaultRecipes()
	source, target, _, catalyst, path, err := pathfmt.ParsePath(*text, recipes)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse:", err)
		return exitMalformedInput
	}

	start := source.MustAdd(catalyst)
	goal := target.MustAdd(catalyst)
	if err := verify.Verify(start, goal, path, recipes); err != nil {
		fmt.Fprintln(os.Stderr, "invalid:", err)
		return exitNoSolution
	}

	fmt.Println("valid")
	return exitOK
}

func runSchedule(args []string) int {
	fs := flag.NewFlagSet("schedule", flag.ContinueOnError)
	text := fs.String("path", "", "canonical path text")
	if err := fs.Parse(args); err != nil {
		return exitMalformedInput
	}

	recipes := recipe.DefaultRecipes()
	source, _, _, catalyst, path, err := pathfmt.ParsePath(*text, recipes)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse:", err)
		return exitMalformedInput
	}

	start := source.MustAdd(catalyst)
	stages, err := schedule.Schedule(start, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "schedule:", err)
		return exitNoSolution
	}

	fmt.Println(pathfmt.FormatStages(stages))
	return exitOK
}

func isCapError(err error) bool {
	var te *solve.TruncatedError
	return errors.As(err, &te)
}
