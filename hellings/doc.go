/*
Package hellings implements Hellings' algorithm for context-free path querying.

Given a grammar in (weak) Chomsky Normal Form and a directed graph with
labeled edges, Query computes all pairs of vertices (u,v) connected by a path
whose label sequence is derivable from the grammar's start symbol.

The algorithm maintains an n × n table of non-terminal sets. Cell (u,v) holds
every non-terminal known to derive the labels of some path from u to v. The
table is seeded from empty productions (for every vertex, on the diagonal) and
from terminal rules (for every matching edge). New facts (X,u,v) are put on a
worklist. Processing a fact combines it with facts to its left and to its
right, using the binary rules of the grammar:

   Z → Y X   with Y ∈ table[p][u]  ⇒  Z ∈ table[p][v]
   Z → X Y   with Y ∈ table[v][q]  ⇒  Z ∈ table[u][q]

Every fact enters the worklist at most once, therefore the algorithm terminates
after O(n³ · |G|) steps.

If a grammar is not yet in CNF, convert it with grammar.ToCNF first.
*/
package hellings

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
