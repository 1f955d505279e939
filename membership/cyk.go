package membership

import (
	"fmt"

	"github.com/npillmayer/cfpq"
	"github.com/npillmayer/cfpq/grammar"
	"github.com/npillmayer/cfpq/internal/ntset"
)

// CYK decides if word is derivable from g, using the Cocke-Younger-Kasami
// algorithm. g has to be in Chomsky Normal Form (see grammar.IsCNF), otherwise
// an error wrapping grammar.ErrNotCNF is returned.
func CYK(g *grammar.Grammar, word []string) (bool, error) {
	if !grammar.IsCNF(g) {
		return false, fmt.Errorf("cyk: %w", grammar.ErrNotCNF)
	}
	n := len(word)
	if n == 0 {
		return g.Contains(grammar.NewRule(g.Start(), cfpq.Epsilon)), nil
	}
	nts := g.NonTerminals()
	ids := make(map[string]int, len(nts))
	for i, nt := range nts {
		ids[nt] = i
	}
	type binary struct{ head, left, right int }
	var binaries []binary
	terminals := make(map[string][]int)
	for _, r := range g.Rules() {
		switch {
		case r.IsEmptyProduction():
		case r.Len() == 1:
			terminals[r.Symbol(0)] = append(terminals[r.Symbol(0)], ids[r.Head()])
		default:
			binaries = append(binaries, binary{ids[r.Head()], ids[r.Symbol(0)], ids[r.Symbol(1)]})
		}
	}
	// spans[l][i] holds the non-terminals deriving word[i:i+l]
	spans := make([][]ntset.Set, n+1)
	for l := 1; l <= n; l++ {
		spans[l] = make([]ntset.Set, n-l+1)
		for i := range spans[l] {
			spans[l][i] = ntset.New(len(nts))
		}
	}
	for i, t := range word {
		for _, head := range terminals[t] {
			spans[1][i].Set(head)
		}
	}
	for l := 2; l <= n; l++ {
		for i := 0; i+l <= n; i++ {
			for k := 1; k < l; k++ {
				left, right := spans[k][i], spans[l-k][i+k]
				if left.IsEmpty() || right.IsEmpty() {
					continue
				}
				for _, b := range binaries {
					if left.Has(b.left) && right.Has(b.right) {
						spans[l][i].Set(b.head)
					}
				}
			}
		}
	}
	accept := spans[n][0].Has(ids[g.Start()])
	T().Debugf("cyk: word of length %d derivable = %v", n, accept)
	return accept, nil
}
