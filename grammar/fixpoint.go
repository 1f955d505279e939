package grammar

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/cfpq"
)

// markHeads computes the least set of non-terminals M, such that the head of
// every eligible rule is in M whenever all body non-terminals of the rule are in M.
// Terminal symbols of a body do not contribute to the condition; eligible decides
// if a rule takes part at all.
//
// We maintain a counter of unmarked body non-terminals for every eligible rule.
// Marking a non-terminal decrements the counters of all rules mentioning it,
// and a counter dropping to zero marks the rule's head.
func markHeads(rules []Rule, eligible func(Rule) bool) map[string]bool {
	marked := make(map[string]bool)
	pending := make([]int, len(rules))
	concerned := make(map[string][]int)
	queue := doublylinkedlist.New()
	mark := func(sym string) {
		if !marked[sym] {
			marked[sym] = true
			queue.Add(sym)
		}
	}
	for i, r := range rules {
		if !eligible(r) {
			pending[i] = -1
			continue
		}
		deps := r.NonTerminals()
		pending[i] = len(deps)
		for _, d := range deps {
			concerned[d] = append(concerned[d], i)
		}
		if len(deps) == 0 {
			mark(r.head)
		}
	}
	for !queue.Empty() {
		v, _ := queue.Get(0)
		queue.Remove(0)
		for _, i := range concerned[v.(string)] {
			pending[i]--
			if pending[i] == 0 {
				mark(rules[i].head)
			}
		}
	}
	return marked
}

// EpsilonProducers returns the set of non-terminals of g which are able to
// derive the empty word.
func EpsilonProducers(g *Grammar) map[string]bool {
	return markHeads(g.Rules(), func(r Rule) bool {
		if r.IsEmptyProduction() {
			return true
		}
		for _, sym := range r.body {
			if !cfpq.IsNonTerminal(sym) {
				return false
			}
		}
		return true
	})
}

// Generating returns the set of non-terminals of g which are able to derive
// some terminal word.
func Generating(g *Grammar) map[string]bool {
	return markHeads(g.Rules(), func(Rule) bool { return true })
}

// Reachable returns the set of non-terminals reachable from the start symbol
// of g, following the edges head → body non-terminal breadth-first.
func Reachable(g *Grammar) map[string]bool {
	byHead := make(map[string][]Rule)
	for _, r := range g.Rules() {
		byHead[r.head] = append(byHead[r.head], r)
	}
	visited := hashset.New()
	visited.Add(g.start)
	queue := doublylinkedlist.New()
	queue.Add(g.start)
	for !queue.Empty() {
		v, _ := queue.Get(0)
		queue.Remove(0)
		for _, r := range byHead[v.(string)] {
			for _, nt := range r.NonTerminals() {
				if !visited.Contains(nt) {
					visited.Add(nt)
					queue.Add(nt)
				}
			}
		}
	}
	reachable := make(map[string]bool, visited.Size())
	for _, v := range visited.Values() {
		reachable[v.(string)] = true
	}
	return reachable
}
