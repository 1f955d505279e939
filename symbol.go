package cfpq

import (
	"errors"
	"fmt"
	"regexp"
)

// Epsilon is the reserved terminal denoting the empty production.
const Epsilon = "eps"

var (
	terminalMatcher    = regexp.MustCompile("^(" + Epsilon + "|[a-z]+[0-9]*)$")
	nonTerminalMatcher = regexp.MustCompile("^[A-Z]+[0-9]*$")
)

// ErrMalformedSymbol is flagged for tokens which are neither terminals nor non-terminals.
var ErrMalformedSymbol = errors.New("malformed grammar symbol")

// SymbolClass is the syntactic class of a grammar symbol.
type SymbolClass int8

// Symbol classes
const (
	Malformed SymbolClass = iota
	Terminal
	NonTerminal
)

func (c SymbolClass) String() string {
	switch c {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	}
	return "malformed"
}

// IsTerminal is true for the empty marker and for lowercase symbols, optionally
// followed by digits, e.g. "a", "subclass", "x12".
func IsTerminal(sym string) bool {
	return terminalMatcher.MatchString(sym)
}

// IsNonTerminal is true for uppercase symbols, optionally followed by digits,
// e.g. "S", "NP", "S12".
func IsNonTerminal(sym string) bool {
	return nonTerminalMatcher.MatchString(sym)
}

// IsEpsilon is true for the empty marker.
func IsEpsilon(sym string) bool {
	return sym == Epsilon
}

// Classify returns the class of a symbol. For malformed symbols it returns
// an error wrapping ErrMalformedSymbol.
func Classify(sym string) (SymbolClass, error) {
	if IsTerminal(sym) {
		return Terminal, nil
	}
	if IsNonTerminal(sym) {
		return NonTerminal, nil
	}
	return Malformed, fmt.Errorf("%w: %q", ErrMalformedSymbol, sym)
}
