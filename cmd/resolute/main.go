package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/prooflab/resolute/internal/buildconfig"
	"github.com/prooflab/resolute/internal/cnf"
	"github.com/prooflab/resolute/internal/logic"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	maxRounds := flag.Int("max-rounds", 0,
		"stop as inconclusive after this many saturation rounds (0 = run to fixpoint)")
	flag.Usage = flagUsage
	flag.Parse()

	if *showVersion {
		fmt.Printf("resolute %s\n", buildconfig.String())
		return
	}

	if flag.NArg() != 1 {
		flagUsage()
		os.Exit(1)
	}

	clauses, err := cnf.ParseFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	result, err := logic.Saturate(context.Background(), clauses,
		logic.Options{MaxRounds: *maxRounds})
	if err != nil {
		if errors.Is(err, logic.ErrInconclusive) {
			fmt.Fprintf(os.Stderr, "inconclusive after %d rounds\n", result.Rounds)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(result.Verdict)
}

func flagUsage() {
	fmt.Fprintf(os.Stderr, "Usage: resolute KB.cnf [args]"+
		"\n\nValid Arguments:\n")
	flag.PrintDefaults()
}
