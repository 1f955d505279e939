/*
Package cfpq is about context-free path querying.

Description

Given a context-free grammar, which describes the label sequences of "valid"
paths, and a directed, edge-labeled graph, context-free path querying (CFPQ)
determines which pairs of vertices are connected by a path whose label
sequence is a word of the grammar's language. This is a building block
for reachability analysis on graph databases and RDF stores.

Contents

The algorithms are implemented in sub-packages of cfpq:

■ grammar: Rules, grammars and the transformation pipeline to convert an
arbitrary context-free grammar into Chomsky Normal Form (CNF).

■ hellings: Hellings' dynamic programming algorithm, computing all-pairs
context-free reachability over a graph for a grammar in CNF.

■ graph: Directed graphs with terminal labels, on dense integer vertices.

■ membership: Membership tests for words, CYK for grammars in CNF and an
Earley recognizer for arbitrary grammars.

Base package cfpq provides the symbol model shared by all sub-packages.
Symbols are plain strings; there is no type tag attached to them. Instead,
the class of a symbol is determined by its shape:

   terminal:     eps | [a-z]+[0-9]*
   non-terminal: [A-Z]+[0-9]*

where "eps" is the reserved marker for the empty production. Tokens
matching neither pattern are malformed.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package cfpq

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
