package grammar

import "strconv"

// Names is an allocator for fresh non-terminal names. It is scoped to a
// single conversion session and must not be shared between conversions.
//
// The zero value is not usable; create allocators with NewNames.
type Names struct {
	used  map[string]bool
	index int
}

// NewNames creates an allocator which knows all the symbols of grammars gs.
func NewNames(gs ...*Grammar) *Names {
	names := &Names{used: make(map[string]bool)}
	for _, g := range gs {
		names.ConsumeGrammar(g)
	}
	return names
}

// ConsumeSymbol registers a symbol as used.
func (names *Names) ConsumeSymbol(sym string) {
	names.used[sym] = true
}

// ConsumeRule registers the head and all body symbols of a rule.
func (names *Names) ConsumeRule(r Rule) {
	names.used[r.head] = true
	for _, sym := range r.body {
		names.used[sym] = true
	}
}

// ConsumeGrammar registers the start symbol and the symbols of all rules.
func (names *Names) ConsumeGrammar(g *Grammar) {
	names.ConsumeSymbol(g.start)
	for _, r := range g.rules {
		names.ConsumeRule(r)
	}
}

// Used is true if sym has been consumed or handed out before.
func (names *Names) Used(sym string) bool {
	return names.used[sym]
}

// FreshNonTerminal returns a name "S<n>" which has not been used before,
// and registers it.
func (names *Names) FreshNonTerminal() string {
	for {
		name := "S" + strconv.Itoa(names.index)
		names.index++
		if !names.used[name] {
			names.used[name] = true
			return name
		}
	}
}
