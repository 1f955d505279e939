package membership

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cfpq"
	"github.com/npillmayer/cfpq/grammar"
	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/earley"
	"github.com/npillmayer/gorgo/lr/scanner"
)

// tokenBase is the token value of the first terminal. Terminals are numbered
// consecutively in alphabetical order.
const tokenBase = 1000

// Earley decides if word is derivable from an arbitrary grammar g.
//
// The empty word is decided by an empty-producer analysis. For other words the
// grammar is first made free of empty productions and reduced to its generating
// and reachable rules; a grammar with an empty language rejects every word. The
// remaining rules are fed into a gorgo grammar builder, and the word is parsed
// by an Earley parser.
func Earley(g *grammar.Grammar, word []string) (bool, error) {
	if err := g.Validate(); err != nil {
		return false, err
	}
	if len(word) == 0 {
		return grammar.EpsilonProducers(g)[g.Start()], nil
	}
	reduced, err := grammar.EliminateEpsilon(grammar.Binarize(g))
	if err != nil {
		return false, err
	}
	reduced = grammar.New(reduced.Start(), nonEmpty(reduced.Rules()))
	if reduced, err = grammar.RemoveNonGenerating(reduced); errors.Is(err, grammar.ErrEmptyLanguage) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	reduced = grammar.RemoveUnreachable(reduced)
	tokens := make(map[string]int)
	for i, t := range reduced.Terminals() {
		tokens[t] = tokenBase + i
	}
	for _, t := range word {
		if _, ok := tokens[t]; !ok {
			T().Debugf("earley: symbol %q is not a terminal of the grammar", t)
			return false, nil
		}
	}
	ga, err := analysis(reduced, tokens)
	if err != nil {
		return false, err
	}
	parser := earley.NewParser(ga)
	if parser == nil {
		return false, errors.New("earley: could not create parser")
	}
	accept, err := parser.Parse(newWordScanner(word, tokens), nil)
	T().Debugf("earley: word of length %d derivable = %v", len(word), accept)
	return accept, err
}

// analysis translates g into a gorgo grammar. Rules for the start symbol
// are entered first, as gorgo's builder derives the start symbol from them.
func analysis(g *grammar.Grammar, tokens map[string]int) (*lr.LRAnalysis, error) {
	b := lr.NewGrammarBuilder("cfpq")
	rules := g.RulesFor(g.Start())
	for _, r := range g.Rules() {
		if r.Head() != g.Start() {
			rules = append(rules, r)
		}
	}
	for _, r := range rules {
		rb := b.LHS(r.Head())
		for _, sym := range r.Body() {
			if cfpq.IsTerminal(sym) {
				rb = rb.T(sym, tokens[sym])
			} else {
				rb = rb.N(sym)
			}
		}
		rb.End()
	}
	lrg, err := b.Grammar()
	if err != nil {
		return nil, fmt.Errorf("earley: %w", err)
	}
	return lr.Analysis(lrg), nil
}

// wordScanner delivers the symbols of a word as tokens.
// It implements the scanner.Tokenizer interface.
type wordScanner struct {
	word   []string
	tokens map[string]int
	pos    int
}

func newWordScanner(word []string, tokens map[string]int) *wordScanner {
	return &wordScanner{word: word, tokens: tokens}
}

// NextToken returns the next symbol of the word, or EOF.
func (sc *wordScanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if sc.pos >= len(sc.word) {
		return scanner.EOF, "", uint64(sc.pos), 0
	}
	sym := sc.word[sc.pos]
	sc.pos++
	return sc.tokens[sym], sym, uint64(sc.pos - 1), 1
}

// SetErrorHandler is part of the scanner.Tokenizer interface. Words are
// validated before parsing, so there are no errors to report.
func (sc *wordScanner) SetErrorHandler(h func(error)) {
}

// nonEmpty drops empty productions and rules of the form A → A.
func nonEmpty(rules []grammar.Rule) []grammar.Rule {
	var r []grammar.Rule
	for _, rule := range rules {
		if rule.IsEmptyProduction() || (rule.IsUnit() && rule.Symbol(0) == rule.Head()) {
			continue
		}
		r = append(r, rule)
	}
	return r
}
