package hellings

import (
	"context"
	"fmt"
	"sort"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/cfpq"
	"github.com/npillmayer/cfpq/grammar"
	"github.com/npillmayer/cfpq/graph"
	"github.com/npillmayer/cfpq/internal/ntset"
)

// Pair is an ordered pair of vertices.
type Pair struct {
	From, To int
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.From, p.To)
}

// Result is the set of vertex pairs connected by a path with a label sequence
// in the language of the grammar.
type Result struct {
	pairs []Pair
	set   map[Pair]bool
}

// Pairs returns the reachable pairs, ordered by source and target vertex.
func (res *Result) Pairs() []Pair {
	pairs := make([]Pair, len(res.pairs))
	copy(pairs, res.pairs)
	return pairs
}

// Contains is true if (u,v) is a reachable pair.
func (res *Result) Contains(u, v int) bool {
	return res.set[Pair{u, v}]
}

// Len returns the number of reachable pairs.
func (res *Result) Len() int {
	return len(res.pairs)
}

// binary is a rule Z → X Y, seen from one of its body symbols. other is the
// body symbol not used as the index.
type binary struct {
	other int
	head  int
}

// fact is a worklist entry: non-terminal nt derives a path from u to v.
type fact struct {
	nt   int
	u, v int
}

// engine holds the rule indices and the reachability table for a single query.
type engine struct {
	n         int        // number of vertices
	nts       []string   // interned non-terminals
	start     int        // interned start symbol
	empty     []int      // heads of empty productions
	terminals map[string][]int
	byLeft    map[int][]binary // Z → X Y, indexed by X
	byRight   map[int][]binary // Z → Y X, indexed by X
	table     []ntset.Set      // n × n cells
	worklist  *arraystack.Stack
	ctx       context.Context
}

// Query computes all pairs of vertices of gr connected by a path with a label
// sequence derivable from the start symbol of g. g has to be in weak Chomsky
// Normal Form, i.e., every rule body is either the empty marker, a single
// terminal, or a pair of non-terminals (see grammar.IsWeakCNF).
//
// Query checks ctx for cancellation once per worklist iteration.
func Query(ctx context.Context, g *grammar.Grammar, gr *graph.Graph) (*Result, error) {
	if !grammar.IsWeakCNF(g) {
		return nil, fmt.Errorf("hellings: %w", grammar.ErrNotCNF)
	}
	e := newEngine(ctx, g, gr.Size())
	T().Debugf("hellings: %d vertices, %d edges, %d non-terminals", e.n, gr.EdgeCount(), len(e.nts))
	e.initialize(gr)
	if err := e.propagate(); err != nil {
		return nil, err
	}
	res := e.result()
	T().Infof("hellings: %d pairs reachable for start symbol %s", res.Len(), g.Start())
	return res, nil
}

func newEngine(ctx context.Context, g *grammar.Grammar, n int) *engine {
	e := &engine{
		n:         n,
		nts:       g.NonTerminals(),
		terminals: make(map[string][]int),
		byLeft:    make(map[int][]binary),
		byRight:   make(map[int][]binary),
		worklist:  arraystack.New(),
		ctx:       ctx,
	}
	ids := make(map[string]int, len(e.nts))
	for i, nt := range e.nts {
		ids[nt] = i
	}
	e.start = ids[g.Start()]
	for _, r := range g.Rules() {
		head := ids[r.Head()]
		switch {
		case r.IsEmptyProduction():
			e.empty = append(e.empty, head)
		case r.Len() == 1:
			t := r.Symbol(0)
			e.terminals[t] = append(e.terminals[t], head)
		default:
			x, y := ids[r.Symbol(0)], ids[r.Symbol(1)]
			e.byLeft[x] = append(e.byLeft[x], binary{other: y, head: head})
			e.byRight[y] = append(e.byRight[y], binary{other: x, head: head})
		}
	}
	e.table = make([]ntset.Set, n*n)
	for i := range e.table {
		e.table[i] = ntset.New(len(e.nts))
	}
	return e
}

func (e *engine) cell(u, v int) ntset.Set {
	return e.table[u*e.n+v]
}

// record enters a new fact into the table and onto the worklist.
func (e *engine) record(nt, u, v int) {
	e.cell(u, v).Set(nt)
	e.worklist.Push(fact{nt: nt, u: u, v: v})
}

func (e *engine) initialize(gr *graph.Graph) {
	for u := 0; u < e.n; u++ {
		for _, head := range e.empty {
			if !e.cell(u, u).Has(head) {
				e.record(head, u, u)
			}
		}
		for _, edge := range gr.Edges(u) {
			if !cfpq.IsTerminal(edge.Label) {
				continue
			}
			for _, head := range e.terminals[edge.Label] {
				if !e.cell(u, edge.To).Has(head) {
					e.record(head, u, edge.To)
				}
			}
		}
	}
}

func (e *engine) propagate() error {
	buf, err := borrowAdditions(len(e.nts))
	if err != nil {
		return err
	}
	defer buf.release()
	for !e.worklist.Empty() {
		if err := e.ctx.Err(); err != nil {
			T().Infof("hellings: query cancelled with %d facts pending", e.worklist.Size())
			return err
		}
		top, _ := e.worklist.Pop()
		f := top.(fact)
		if rules := e.byRight[f.nt]; len(rules) > 0 {
			for p := 0; p < e.n; p++ { // Y ∈ table[p][u], Z → Y X  ⇒  Z ∈ table[p][v]
				left, target := e.cell(p, f.u), e.cell(p, f.v)
				if left.IsEmpty() {
					continue
				}
				for _, b := range rules {
					if left.Has(b.other) && !target.Has(b.head) {
						buf.add(b.head)
					}
				}
				e.merge(buf, p, f.v)
			}
		}
		if rules := e.byLeft[f.nt]; len(rules) > 0 {
			for q := 0; q < e.n; q++ { // Y ∈ table[v][q], Z → X Y  ⇒  Z ∈ table[u][q]
				right, target := e.cell(f.v, q), e.cell(f.u, q)
				if right.IsEmpty() {
					continue
				}
				for _, b := range rules {
					if right.Has(b.other) && !target.Has(b.head) {
						buf.add(b.head)
					}
				}
				e.merge(buf, f.u, q)
			}
		}
	}
	return nil
}

func (e *engine) merge(buf *additions, u, v int) {
	for _, nt := range buf.heads {
		e.record(nt, u, v)
	}
	buf.reset()
}

func (e *engine) result() *Result {
	res := &Result{set: make(map[Pair]bool)}
	for u := 0; u < e.n; u++ {
		for v := 0; v < e.n; v++ {
			if e.cell(u, v).Has(e.start) {
				p := Pair{u, v}
				res.pairs = append(res.pairs, p)
				res.set[p] = true
			}
		}
	}
	sort.Slice(res.pairs, func(i, j int) bool {
		if res.pairs[i].From != res.pairs[j].From {
			return res.pairs[i].From < res.pairs[j].From
		}
		return res.pairs[i].To < res.pairs[j].To
	})
	return res
}
