/*
Package grammar implements context-free grammars and their transformation
into Chomsky Normal Form (CNF).

Grammars and rules are immutable values. Every transformation returns a
fresh grammar and never modifies its input. Equality of rules and grammars
is structural: two rules are equal if they have the same head and the same
body, two grammars are equal if they have the same start symbol and the
same set of rules.

CNF Pipeline

Conversion into CNF is a fixed sequence of stages, each of type
Grammar → Grammar:

   1. Binarize              rules get a body length of at most 2
   2. EliminateEpsilon      no empty productions, except at the start symbol
   3. EliminateUnits        no rules of the form A → B
   4. RemoveNonGenerating   every non-terminal derives a terminal word
   5. RemoveUnreachable     every non-terminal is reachable from the start
   6. IsolateTerminals      binary rules consist of non-terminals only

Each stage states its precondition and checks it. A stage called with a
grammar not meeting its precondition will return ErrPrecondition;
stages never call earlier stages to fix their input. ToCNF runs the stages in
the correct order.

If the language of a grammar is empty, stage 4 will flag ErrEmptyLanguage.
This is a legitimate result and clients have to handle it explicitly.

Fresh Names

Stages introducing new non-terminals draw their names from a Names
allocator. The allocator knows every symbol of the grammar it has consumed
and hands out names "S0", "S1", … not already in use. ToCNF threads a single
allocator through all stages.
*/
package grammar

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
