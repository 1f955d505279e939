package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/cfpq"
)

// Stage is a single transformation step of the CNF pipeline.
type Stage struct {
	Name         string
	precondition func(*Grammar) error
	transform    func(*Grammar, *Names) (*Grammar, error)
}

// Apply checks the stage's precondition and performs the transformation,
// drawing fresh non-terminals from names.
func (stage Stage) Apply(g *Grammar, names *Names) (*Grammar, error) {
	if stage.precondition != nil {
		if err := stage.precondition(g); err != nil {
			T().Errorf("stage %s called for unsuitable grammar: %v", stage.Name, err)
			return nil, fmt.Errorf("%s: %w", stage.Name, err)
		}
	}
	T().P("stage", stage.Name).Debugf("transforming grammar with %d rules", g.Size())
	return stage.transform(g, names)
}

// Stages of the CNF pipeline. They have to be applied in this order.
var (
	BinarizeStage            = Stage{"binarize", nil, binarize}
	EliminateEpsilonStage    = Stage{"eliminate-epsilon", hasSmallRules, eliminateEpsilon}
	EliminateUnitsStage      = Stage{"eliminate-units", isEpsilonReduced, eliminateUnits}
	RemoveNonGeneratingStage = Stage{"remove-non-generating", nil, removeNonGenerating}
	RemoveUnreachableStage   = Stage{"remove-unreachable", nil, removeUnreachable}
	IsolateTerminalsStage    = Stage{"isolate-terminals", hasSmallRules, isolateTerminals}
)

// Pipeline returns the stages of the CNF conversion in the order of application.
func Pipeline() []Stage {
	return []Stage{
		BinarizeStage,
		EliminateEpsilonStage,
		EliminateUnitsStage,
		RemoveNonGeneratingStage,
		RemoveUnreachableStage,
		IsolateTerminalsStage,
	}
}

// ToCNF converts a grammar into Chomsky Normal Form. The resulting grammar
// derives the same words as g. If the start symbol is able to derive the empty
// word, the resulting grammar has a single empty production at its start symbol,
// which does not occur in any rule body.
//
// If the language of g is empty, ToCNF returns ErrEmptyLanguage. Malformed
// symbols are reported with an error wrapping cfpq.ErrMalformedSymbol.
func ToCNF(g *Grammar) (*Grammar, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	names := NewNames(g)
	if g.MentionsInBody(g.start) {
		start := names.FreshNonTerminal()
		T().Debugf("start symbol %s occurs in rule bodies, new start is %s", g.start, start)
		g = New(start, append(g.Rules(), NewRule(start, g.start)))
	}
	var err error
	for _, stage := range Pipeline() {
		if g, err = stage.Apply(g, names); err != nil {
			return nil, err
		}
	}
	if !IsCNF(g) {
		T().Errorf("CNF pipeline produced grammar not in CNF")
		g.Dump()
		return nil, fmt.Errorf("conversion result: %w", ErrNotCNF)
	}
	T().Infof("grammar converted to CNF, start = %s, %d rules", g.start, g.Size())
	return g, nil
}

// IsCNF is true if every rule of g has either a single terminal or two
// non-terminals as its body. An empty production is allowed for the start
// symbol only, and only if the start symbol does not occur in any body.
func IsCNF(g *Grammar) bool {
	if !IsWeakCNF(g) {
		return false
	}
	for _, r := range g.rules {
		if r.IsEmptyProduction() && (r.head != g.start || g.MentionsInBody(g.start)) {
			return false
		}
	}
	return true
}

// IsWeakCNF is true if every rule of g has as its body either the empty
// marker, a single terminal, or two non-terminals.
func IsWeakCNF(g *Grammar) bool {
	for _, r := range g.rules {
		switch r.Len() {
		case 1:
			if !cfpq.IsTerminal(r.body[0]) {
				return false
			}
		case 2:
			if !cfpq.IsNonTerminal(r.body[0]) || !cfpq.IsNonTerminal(r.body[1]) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// --- Preconditions ---------------------------------------------------------

func hasSmallRules(g *Grammar) error {
	for _, r := range g.Rules() {
		if r.Len() > 2 {
			return fmt.Errorf("rule %s is longer than 2: %w", r, ErrPrecondition)
		}
	}
	return nil
}

func isEpsilonReduced(g *Grammar) error {
	if err := hasSmallRules(g); err != nil {
		return err
	}
	for _, r := range g.Rules() {
		if r.IsEmptyProduction() && r.head != g.start {
			return fmt.Errorf("empty production %s: %w", r, ErrPrecondition)
		}
	}
	return nil
}

// --- Stages ----------------------------------------------------------------

// Binarize splits up rules with a body longer than 2. A rule
//
//    A → X1 X2 … Xk
//
// is replaced by a chain A → F1 Xk, F1 → F2 Xk-1, …, Fk-2 → X1 X2.
func Binarize(g *Grammar) *Grammar {
	b, _ := BinarizeStage.Apply(g, NewNames(g))
	return b
}

func binarize(g *Grammar, names *Names) (*Grammar, error) {
	rules := make([]Rule, 0, g.Size())
	for _, r := range g.Rules() {
		head, body := r.head, r.body
		for len(body) > 2 {
			fresh := names.FreshNonTerminal()
			rules = append(rules, NewRule(head, fresh, body[len(body)-1]))
			body = body[:len(body)-1]
			head = fresh
		}
		rules = append(rules, NewRule(head, body...))
	}
	return New(g.start, rules), nil
}

// EliminateEpsilon removes all empty productions. If the start symbol may
// derive the empty word, a new start symbol S' is introduced with rules
// S' → eps and S' → S.
//
// Precondition: no rule body is longer than 2.
func EliminateEpsilon(g *Grammar) (*Grammar, error) {
	return EliminateEpsilonStage.Apply(g, NewNames(g))
}

func eliminateEpsilon(g *Grammar, names *Names) (*Grammar, error) {
	producers := EpsilonProducers(g)
	rules := make([]Rule, 0, g.Size())
	for _, r := range g.Rules() {
		if r.IsEmptyProduction() {
			continue
		}
		if r.Len() == 2 {
			if producers[r.body[0]] {
				rules = append(rules, NewRule(r.head, r.body[1]))
			}
			if producers[r.body[1]] {
				rules = append(rules, NewRule(r.head, r.body[0]))
			}
		}
		rules = append(rules, r)
	}
	start := g.start
	if producers[start] {
		start = names.FreshNonTerminal()
		rules = append(rules, NewRule(start, cfpq.Epsilon), NewRule(start, g.start))
		T().Debugf("start symbol %s produces ε, new start is %s", g.start, start)
	}
	return New(start, rules), nil
}

// EliminateUnits removes all rules A → B, where B is a non-terminal.
// For every non-terminal A, the non-unit rules of all non-terminals reachable
// from A via unit rules are copied to A.
//
// Precondition: no rule body is longer than 2 and no empty productions exist,
// except for the start symbol.
func EliminateUnits(g *Grammar) (*Grammar, error) {
	return EliminateUnitsStage.Apply(g, NewNames(g))
}

func eliminateUnits(g *Grammar, _ *Names) (*Grammar, error) {
	nonUnit := make(map[string][]Rule)
	units := make(map[string][]string)
	for _, r := range g.Rules() {
		if r.IsUnit() {
			units[r.head] = append(units[r.head], r.body[0])
		} else {
			nonUnit[r.head] = append(nonUnit[r.head], r)
		}
	}
	rules := make([]Rule, 0, g.Size())
	for _, origin := range g.NonTerminals() {
		visited := hashset.New()
		visited.Add(origin)
		queue := doublylinkedlist.New()
		queue.Add(origin)
		for !queue.Empty() {
			v, _ := queue.Get(0)
			queue.Remove(0)
			for _, r := range nonUnit[v.(string)] {
				rules = append(rules, r.withHead(origin))
			}
			for _, b := range units[v.(string)] {
				if !visited.Contains(b) {
					visited.Add(b)
					queue.Add(b)
				}
			}
		}
	}
	return New(g.start, rules), nil
}

// RemoveNonGenerating removes every rule which mentions a non-terminal not able
// to derive a terminal word. If no rule for the start symbol remains,
// ErrEmptyLanguage is returned.
func RemoveNonGenerating(g *Grammar) (*Grammar, error) {
	return RemoveNonGeneratingStage.Apply(g, NewNames(g))
}

func removeNonGenerating(g *Grammar, _ *Names) (*Grammar, error) {
	generating := Generating(g)
	rules := make([]Rule, 0, g.Size())
	hasStart := false
	for _, r := range g.Rules() {
		if !generating[r.head] || !allIn(r.NonTerminals(), generating) {
			continue
		}
		rules = append(rules, r)
		hasStart = hasStart || r.head == g.start
	}
	if !hasStart {
		T().Infof("start symbol %s does not generate any word", g.start)
		return nil, ErrEmptyLanguage
	}
	return New(g.start, rules), nil
}

// RemoveUnreachable removes every rule whose head is not reachable from the
// start symbol.
func RemoveUnreachable(g *Grammar) *Grammar {
	r, _ := RemoveUnreachableStage.Apply(g, NewNames(g))
	return r
}

func removeUnreachable(g *Grammar, _ *Names) (*Grammar, error) {
	reachable := Reachable(g)
	rules := make([]Rule, 0, g.Size())
	for _, r := range g.Rules() {
		if reachable[r.head] {
			rules = append(rules, r)
		}
	}
	return New(g.start, rules), nil
}

// IsolateTerminals replaces terminals in rules of length 2 by non-terminals.
// For every such terminal t a single new rule T → t is introduced.
//
// Precondition: no rule body is longer than 2.
func IsolateTerminals(g *Grammar) (*Grammar, error) {
	return IsolateTerminalsStage.Apply(g, NewNames(g))
}

func isolateTerminals(g *Grammar, names *Names) (*Grammar, error) {
	var substitutes []Rule
	memo := make(map[string]string)
	substitute := func(sym string) string {
		if !cfpq.IsTerminal(sym) {
			return sym
		}
		nt, ok := memo[sym]
		if !ok {
			nt = names.FreshNonTerminal()
			memo[sym] = nt
			substitutes = append(substitutes, NewRule(nt, sym))
		}
		return nt
	}
	rules := make([]Rule, 0, g.Size())
	for _, r := range g.Rules() {
		if r.Len() == 2 {
			r = NewRule(r.head, substitute(r.body[0]), substitute(r.body[1]))
		}
		rules = append(rules, r)
	}
	return New(g.start, append(rules, substitutes...)), nil
}

func allIn(syms []string, set map[string]bool) bool {
	for _, sym := range syms {
		if !set[sym] {
			return false
		}
	}
	return true
}
