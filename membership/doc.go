/*
Package membership decides if a word is derivable from a grammar.

CYK works on grammars in Chomsky Normal Form and is the recognizer used for
queries. Earley accepts arbitrary grammars; it delegates to the Earley parser
of package gorgo/lr/earley and serves as a cross-check for CNF conversions.

Words are given as slices of terminal symbols.
*/
package membership

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
