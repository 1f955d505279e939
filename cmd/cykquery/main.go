/*
Command cykquery tests if a word is derivable from a context-free grammar.

Usage:

	cykquery [--trace level] [--recognizer cyk|earley] [--strict-empty] <grammar file> <query file>

The grammar is converted into Chomsky Normal Form and the first non-empty line
of the query file is tested for membership, reading every character as a
terminal. The result is printed as 'true' or 'false'.

If the language of the grammar is empty, cykquery by default prints whether
the query is the empty string, which is what earlier versions of this tool did.
With --strict-empty it prints 'false' instead.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/cfpq/grammar"
	"github.com/npillmayer/cfpq/internal/ingest"
	"github.com/npillmayer/cfpq/membership"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

type options struct {
	trace       string
	recognizer  string
	strictEmpty bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	}
}

const usageLine = "Arguments: <grammar file> <query file>"

func newCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "cykquery <grammar file> <query file>",
		Short:         "test a word for membership in a context-free language",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				fmt.Fprintln(cmd.OutOrStdout(), usageLine)
				return nil
			}
			if err := setupTracing(opts.trace); err != nil {
				return err
			}
			if opts.recognizer != "cyk" && opts.recognizer != "earley" {
				return fmt.Errorf("unknown recognizer %q", opts.recognizer)
			}
			run(opts, cmd.OutOrStdout(), args[0], args[1])
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.trace, "trace", "error", "trace level: error, info or debug")
	flags.StringVar(&opts.recognizer, "recognizer", "cyk", "membership test: cyk or earley")
	flags.BoolVar(&opts.strictEmpty, "strict-empty", false, "report false for every query if the language is empty")
	return cmd
}

func setupTracing(level string) error {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.SyntaxTracer = gologadapter.New()
	for _, t := range []tracing.Trace{gtrace.CoreTracer, gtrace.SyntaxTracer} {
		switch level {
		case "error":
			t.SetTraceLevel(tracing.LevelError)
		case "info":
			t.SetTraceLevel(tracing.LevelInfo)
		case "debug":
			t.SetTraceLevel(tracing.LevelDebug)
		default:
			return fmt.Errorf("unknown trace level %q", level)
		}
	}
	return nil
}

// run prints the result of the membership test to out. Failures are reported
// as an error message on out, not as an exit status.
func run(opts *options, out io.Writer, grammarFile, queryFile string) {
	accept, err := query(opts, grammarFile, queryFile)
	if err != nil {
		fmt.Fprintf(out, "ERROR: %v\n", err)
		return
	}
	fmt.Fprintln(out, accept)
}

func query(opts *options, grammarFile, queryFile string) (bool, error) {
	g, err := readGrammar(grammarFile)
	if err != nil {
		return false, err
	}
	q, err := readQuery(queryFile)
	if err != nil {
		return false, err
	}
	cnf, err := grammar.ToCNF(g)
	if errors.Is(err, grammar.ErrEmptyLanguage) {
		if opts.strictEmpty {
			return false, nil
		}
		gtrace.CoreTracer.Infof("warning: language of %s is empty, reporting whether the query is empty", grammarFile)
		return q == "", nil
	} else if err != nil {
		return false, err
	}
	word := ingest.QueryWord(q)
	if opts.recognizer == "earley" {
		return membership.Earley(g, word)
	}
	return membership.CYK(cnf, word)
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

func readQuery(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ingest.ReadQuery(f)
}
