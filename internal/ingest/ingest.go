/*
Package ingest reads grammars, queries and graphs from their textual form.

Grammars are given one rule per line, symbols separated by white space. The
first symbol is the head of the rule, the remaining symbols form its body:

	# balanced a/b
	S a S b
	S eps

A line consisting of a head only denotes an empty production, as does a body
of 'eps'. The head of the first rule is the start symbol.

Graphs are given one edge per line as 'from label to', with vertices being
non-negative integers. An optional first line 'vertices <n>' fixes the number
of vertices; otherwise it is one more than the largest vertex mentioned.

All input is normalized to Unicode NFC before it is interpreted.

*/
package ingest

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/cfpq"
	"github.com/npillmayer/cfpq/grammar"
	"github.com/npillmayer/cfpq/graph"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrSyntax is returned for input lines which cannot be interpreted.
var ErrSyntax = errors.New("syntax error")

// ErrNoRules is returned for grammar input without any rule.
var ErrNoRules = errors.New("grammar input contains no rules")

// lineError wraps err with the line number it occured on.
func lineError(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}

// ReadGrammar reads a grammar in line format from r.
func ReadGrammar(r io.Reader) (*grammar.Grammar, error) {
	lr := newLineReader(r, true)
	var start string
	var rules []grammar.Rule
	for lr.Scan() {
		rule, err := parseRule(lr.Text())
		if err != nil {
			return nil, lineError(lr.Line(), err)
		}
		if start == "" {
			start = rule.Head()
		}
		rules = append(rules, rule)
	}
	if err := lr.Err(); err != nil {
		return nil, err
	}
	if start == "" {
		return nil, ErrNoRules
	}
	T().Debugf("ingested grammar with %d rules, start = %s", len(rules), start)
	return grammar.New(start, rules), nil
}

// FromLines creates a grammar from a list of rule lines. Line numbers in
// errors refer to positions in lines, counting from 1.
func FromLines(lines []string) (*grammar.Grammar, error) {
	return ReadGrammar(strings.NewReader(strings.Join(lines, "\n")))
}

func parseRule(line string) (grammar.Rule, error) {
	fields := strings.Fields(line)
	for _, sym := range fields {
		if _, err := cfpq.Classify(sym); err != nil {
			return grammar.Rule{}, err
		}
	}
	if !cfpq.IsNonTerminal(fields[0]) {
		return grammar.Rule{}, fmt.Errorf("%w: head %q is not a non-terminal", ErrSyntax, fields[0])
	}
	return grammar.NewRule(fields[0], fields[1:]...), nil
}

// ReadQuery returns the first non-empty line of r, trimmed. Input without
// such a line is read as the empty query.
func ReadQuery(r io.Reader) (string, error) {
	lr := newLineReader(r, false)
	if lr.Scan() {
		return lr.Text(), nil
	}
	return "", lr.Err()
}

// QueryWord splits a query into a sequence of one-character terminals.
func QueryWord(query string) []string {
	query = norm.NFC.String(query)
	word := make([]string, 0, len(query))
	for _, r := range query {
		word = append(word, string(r))
	}
	return word
}

type edgeLine struct {
	from, to int
	label    string
}

// ReadGraph reads an edge-labeled graph in line format from r.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	lr := newLineReader(r, true)
	n := -1
	var edges []edgeLine
	max := -1
	for lr.Scan() {
		fields := strings.Fields(lr.Text())
		if fields[0] == "vertices" {
			if n >= 0 || len(edges) > 0 || len(fields) != 2 {
				return nil, lineError(lr.Line(), fmt.Errorf("%w: misplaced vertex count", ErrSyntax))
			}
			v, err := parseVertex(fields[1])
			if err != nil {
				return nil, lineError(lr.Line(), err)
			}
			n = v
			continue
		}
		e, err := parseEdge(fields)
		if err != nil {
			return nil, lineError(lr.Line(), err)
		}
		if e.from > max {
			max = e.from
		}
		if e.to > max {
			max = e.to
		}
		edges = append(edges, e)
	}
	if err := lr.Err(); err != nil {
		return nil, err
	}
	if n < 0 {
		n = max + 1
	} else if max >= n {
		return nil, fmt.Errorf("vertex %d exceeds declared count %d: %w", max, n, graph.ErrVertexRange)
	}
	g := graph.New(n)
	for _, e := range edges {
		if err := g.AddEdge(e.from, e.label, e.to); err != nil {
			return nil, err
		}
	}
	T().Debugf("ingested graph with %d vertices and %d edges", g.Size(), g.EdgeCount())
	return g, nil
}

func parseEdge(fields []string) (edgeLine, error) {
	if len(fields) != 3 {
		return edgeLine{}, fmt.Errorf("%w: expected 'from label to'", ErrSyntax)
	}
	from, err := parseVertex(fields[0])
	if err != nil {
		return edgeLine{}, err
	}
	to, err := parseVertex(fields[2])
	if err != nil {
		return edgeLine{}, err
	}
	label := fields[1]
	if !cfpq.IsTerminal(label) || cfpq.IsEpsilon(label) {
		return edgeLine{}, fmt.Errorf("%w: edge label %q is not a terminal", cfpq.ErrMalformedSymbol, label)
	}
	return edgeLine{from: from, label: label, to: to}, nil
}

func parseVertex(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q is not a vertex", ErrSyntax, s)
	}
	return v, nil
}
