package cfpq

import (
	"errors"
	"testing"
)

func TestSymbolClasses(t *testing.T) {
	var symbols = []struct {
		sym  string
		clz  SymbolClass
		term bool
		nont bool
	}{
		{"a", Terminal, true, false},
		{"subclass", Terminal, true, false},
		{"x12", Terminal, true, false},
		{Epsilon, Terminal, true, false},
		{"S", NonTerminal, false, true},
		{"NP", NonTerminal, false, true},
		{"S12", NonTerminal, false, true},
		{"", Malformed, false, false},
		{"aB", Malformed, false, false},
		{"Ab", Malformed, false, false},
		{"1a", Malformed, false, false},
		{"a1b", Malformed, false, false},
		{"->", Malformed, false, false},
	}
	for _, s := range symbols {
		if IsTerminal(s.sym) != s.term {
			t.Errorf("Expected IsTerminal(%q) to be %v", s.sym, s.term)
		}
		if IsNonTerminal(s.sym) != s.nont {
			t.Errorf("Expected IsNonTerminal(%q) to be %v", s.sym, s.nont)
		}
		clz, err := Classify(s.sym)
		if clz != s.clz {
			t.Errorf("Expected %q to be classified as %s, have %s", s.sym, s.clz, clz)
		}
		if s.clz == Malformed && !errors.Is(err, ErrMalformedSymbol) {
			t.Errorf("Expected %q to be flagged as malformed, error is %v", s.sym, err)
		}
		if s.clz != Malformed && err != nil {
			t.Errorf("Expected no error for %q, have %v", s.sym, err)
		}
	}
}

func TestEpsilonIsTerminal(t *testing.T) {
	if !IsEpsilon(Epsilon) || !IsTerminal(Epsilon) {
		t.Errorf("Expected the empty marker to be a terminal")
	}
	if IsEpsilon("e") {
		t.Errorf("Expected 'e' not to be the empty marker")
	}
}
