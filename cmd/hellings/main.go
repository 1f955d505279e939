/*
Command hellings computes context-free reachability on a graph.

Usage:

	hellings [--trace level] <grammar file> <graph file>

The grammar is converted into Chomsky Normal Form, and every pair of vertices
(u, v) connected by a path whose labels form a word of the grammar's language
is printed as a line 'u v', in ascending order. A grammar with an empty
language yields no pairs.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/cfpq/grammar"
	"github.com/npillmayer/cfpq/graph"
	"github.com/npillmayer/cfpq/hellings"
	"github.com/npillmayer/cfpq/internal/ingest"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	}
}

const usageLine = "Arguments: <grammar file> <graph file>"

func newCommand() *cobra.Command {
	var trace string
	cmd := &cobra.Command{
		Use:           "hellings <grammar file> <graph file>",
		Short:         "compute context-free reachability on a labeled graph",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				fmt.Fprintln(cmd.OutOrStdout(), usageLine)
				return nil
			}
			if err := setupTracing(trace); err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&trace, "trace", "error", "trace level: error, info or debug")
	return cmd
}

func setupTracing(level string) error {
	gtrace.CoreTracer = gologadapter.New()
	switch level {
	case "error":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	return nil
}

func run(ctx context.Context, out io.Writer, grammarFile, graphFile string) error {
	g, err := readGrammar(grammarFile)
	if err != nil {
		return err
	}
	gr, err := readGraph(graphFile)
	if err != nil {
		return err
	}
	cnf, err := grammar.ToCNF(g)
	if errors.Is(err, grammar.ErrEmptyLanguage) {
		gtrace.CoreTracer.Infof("language of %s is empty, no vertex pairs", grammarFile)
		return nil
	} else if err != nil {
		return err
	}
	result, err := hellings.Query(ctx, cnf, gr)
	if err != nil {
		return err
	}
	for _, p := range result.Pairs() {
		fmt.Fprintf(out, "%d %d\n", p.From, p.To)
	}
	return nil
}

func readGrammar(filename string) (*grammar.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ingest.ReadGrammar(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return g, nil
}

func readGraph(filename string) (*graph.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	gr, err := ingest.ReadGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return gr, nil
}
