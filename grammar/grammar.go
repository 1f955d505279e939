package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/cfpq"
)

// Grammar is a context-free grammar, given by a start symbol and a set of rules.
// Grammars are immutable.
type Grammar struct {
	start string
	rules map[string]Rule
	keys  []string // sorted rule keys
}

// New creates a grammar from a start symbol and a list of rules.
// Duplicate rules are collapsed.
func New(start string, rules []Rule) *Grammar {
	g := &Grammar{
		start: start,
		rules: make(map[string]Rule, len(rules)),
	}
	for _, r := range rules {
		r = NewRule(r.head, r.body...) // re-normalize zero values and hand-made rules
		g.rules[r.Key()] = r
	}
	g.keys = make([]string, 0, len(g.rules))
	for k := range g.rules {
		g.keys = append(g.keys, k)
	}
	sort.Strings(g.keys)
	return g
}

// Start returns the start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rules returns the rules of the grammar, ordered by their keys.
func (g *Grammar) Rules() []Rule {
	rules := make([]Rule, len(g.keys))
	for i, k := range g.keys {
		rules[i] = g.rules[k]
	}
	return rules
}

// RulesFor returns all rules with a given head, ordered by their keys.
func (g *Grammar) RulesFor(head string) []Rule {
	var rules []Rule
	for _, k := range g.keys {
		if r := g.rules[k]; r.head == head {
			rules = append(rules, r)
		}
	}
	return rules
}

// Contains is true if the grammar includes rule r.
func (g *Grammar) Contains(r Rule) bool {
	_, ok := g.rules[r.Key()]
	return ok
}

// Equal compares two grammars structurally.
func (g *Grammar) Equal(other *Grammar) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.start != other.start || len(g.keys) != len(other.keys) {
		return false
	}
	for i, k := range g.keys {
		if other.keys[i] != k {
			return false
		}
	}
	return true
}

// NonTerminals returns the sorted list of non-terminals, including the start
// symbol, every rule head, and every non-terminal occuring in a rule body.
func (g *Grammar) NonTerminals() []string {
	set := treeset.NewWithStringComparator()
	set.Add(g.start)
	for _, r := range g.rules {
		set.Add(r.head)
		for _, sym := range r.body {
			if cfpq.IsNonTerminal(sym) {
				set.Add(sym)
			}
		}
	}
	return toStrings(set.Values())
}

// Terminals returns the sorted list of terminals occuring in rule bodies,
// excluding the empty marker.
func (g *Grammar) Terminals() []string {
	set := treeset.NewWithStringComparator()
	for _, r := range g.rules {
		for _, sym := range r.body {
			if cfpq.IsTerminal(sym) && !cfpq.IsEpsilon(sym) {
				set.Add(sym)
			}
		}
	}
	return toStrings(set.Values())
}

// MentionsInBody is true if sym occurs in any rule body.
func (g *Grammar) MentionsInBody(sym string) bool {
	for _, r := range g.rules {
		if r.Mentions(sym) {
			return true
		}
	}
	return false
}

// Validate checks that the start symbol and every rule head are non-terminals,
// and that every body symbol is either a terminal or a non-terminal.
func (g *Grammar) Validate() error {
	if !cfpq.IsNonTerminal(g.start) {
		return fmt.Errorf("start symbol %q: %w", g.start, cfpq.ErrMalformedSymbol)
	}
	for _, r := range g.Rules() {
		if !cfpq.IsNonTerminal(r.head) {
			return fmt.Errorf("head of rule %s: %w", r, cfpq.ErrMalformedSymbol)
		}
		for _, sym := range r.body {
			if _, err := cfpq.Classify(sym); err != nil {
				return fmt.Errorf("rule %s: %w", r, err)
			}
		}
	}
	return nil
}

// String lists the start symbol followed by the rules, one per line.
func (g *Grammar) String() string {
	var b strings.Builder
	b.WriteString("start = " + g.start + "\n")
	for _, k := range g.keys {
		b.WriteString(k)
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump writes the grammar to the core tracer at debug level.
func (g *Grammar) Dump() {
	T().Debugf("--- grammar, start = %s, %d rules ---", g.start, g.Size())
	for _, k := range g.keys {
		T().Debugf("    %s", k)
	}
}

func toStrings(values []interface{}) []string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = v.(string)
	}
	return s
}
