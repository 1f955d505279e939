package testdata

import (
	"github.com/npillmayer/cfpq"
	"github.com/npillmayer/cfpq/grammar"
)

// symbol is a body symbol, either an interned non-terminal or a terminal.
type symbol struct {
	nt   int // -1 for terminals
	term string
}

// Derives decides by brute force if word is in the language of g. It works
// for arbitrary grammars, including empty productions and unit cycles, and
// is meant as a reference for tests only.
//
// It computes the least set of facts (A, i, j), meaning A derives word[i:j], by
// iterating over all rules until no new fact appears.
func Derives(g *grammar.Grammar, word []string) bool {
	n := len(word)
	m := n + 1
	nts := g.NonTerminals()
	ids := make(map[string]int, len(nts))
	for i, nt := range nts {
		ids[nt] = i
	}
	facts := make([][]bool, len(nts))
	for i := range facts {
		facts[i] = make([]bool, m*m)
	}
	type rule struct {
		head int
		body []symbol
	}
	var rules []rule
	for _, r := range g.Rules() {
		cr := rule{head: ids[r.Head()]}
		for _, sym := range r.Body() {
			if cfpq.IsNonTerminal(sym) {
				cr.body = append(cr.body, symbol{nt: ids[sym]})
			} else if !cfpq.IsEpsilon(sym) {
				cr.body = append(cr.body, symbol{nt: -1, term: sym})
			}
		}
		rules = append(rules, cr)
	}
	has := func(s symbol, i, j int) bool {
		if s.nt < 0 {
			return j == i+1 && word[i] == s.term
		}
		return facts[s.nt][i*m+j]
	}
	reach, next := make([]bool, m), make([]bool, m)
	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			for i := 0; i <= n; i++ {
				for k := range reach {
					reach[k] = k == i
				}
				for _, s := range r.body {
					for k := range next {
						next[k] = false
					}
					for k := i; k <= n; k++ {
						if !reach[k] {
							continue
						}
						for j := k; j <= n; j++ {
							if has(s, k, j) {
								next[j] = true
							}
						}
					}
					reach, next = next, reach
				}
				for j := i; j <= n; j++ {
					if reach[j] && !facts[r.head][i*m+j] {
						facts[r.head][i*m+j] = true
						changed = true
					}
				}
			}
		}
	}
	return facts[ids[g.Start()]][n]
}

// Words enumerates all words over alphabet with a length of at most maxlen,
// including the empty word.
func Words(alphabet []string, maxlen int) [][]string {
	words := [][]string{{}}
	last := [][]string{{}}
	for l := 1; l <= maxlen; l++ {
		var next [][]string
		for _, w := range last {
			for _, a := range alphabet {
				v := make([]string, len(w), len(w)+1)
				copy(v, w)
				next = append(next, append(v, a))
			}
		}
		words = append(words, next...)
		last = next
	}
	return words
}
