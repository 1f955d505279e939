package testdata

import "github.com/npillmayer/cfpq/grammar"

// Sample is a named grammar for tests.
type Sample struct {
	Name    string
	Grammar *grammar.Grammar
}

func r(head string, body ...string) grammar.Rule {
	return grammar.NewRule(head, body...)
}

// Samples returns a collection of grammars covering the edge cases of CNF conversion.
func Samples() []Sample {
	return []Sample{
		{"anbn", grammar.New("S", []grammar.Rule{
			r("S", "a", "S", "b"), r("S", "eps"),
		})},
		{"dyck", grammar.New("S", []grammar.Rule{
			r("S", "S", "S"), r("S", "a", "S", "b"), r("S"),
		})},
		{"long-nullable", grammar.New("S", []grammar.Rule{
			r("S", "A", "B", "C"), r("A", "a", "A"), r("A", "eps"),
			r("B", "b"), r("C", "c", "C"), r("C", "c"),
		})},
		{"unit-cycle", grammar.New("S", []grammar.Rule{
			r("S", "A"), r("A", "B"), r("B", "S"), r("B", "a"), r("B", "b", "B"),
		})},
		{"palindromes", grammar.New("S", []grammar.Rule{
			r("S", "a", "S", "a"), r("S", "b", "S", "b"), r("S", "a"), r("S", "b"), r("S"),
		})},
		{"non-generating", grammar.New("S", []grammar.Rule{
			r("S", "A"), r("S", "a"), r("A", "A", "b"), r("S", "c", "A"),
		})},
		{"unreachable", grammar.New("S", []grammar.Rule{
			r("S", "a"), r("X", "b"), r("X", "S", "X"),
		})},
		{"triple-nullable", grammar.New("S", []grammar.Rule{
			r("S", "A", "A", "A"), r("A", "a"), r("A", "eps"),
		})},
		{"epsilon-only", grammar.New("S", []grammar.Rule{
			r("S", "eps"),
		})},
		{"terminals-in-long-rules", grammar.New("E", []grammar.Rule{
			r("E", "E", "a", "T"), r("E", "T"), r("T", "b", "E", "c"), r("T", "b"),
		})},
		{"existing-fresh-names", grammar.New("S0", []grammar.Rule{
			r("S0", "S1", "a", "S2"), r("S1", "b"), r("S2", "c"), r("S1"),
		})},
	}
}
