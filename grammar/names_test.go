package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFreshNamesAvoidExistingSymbols(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := New("S0", []Rule{NewRule("S0", "S1", "s2"), NewRule("S1", "S3")})
	names := NewNames(g)
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		name := names.FreshNonTerminal()
		if name == "S0" || name == "S1" || name == "S3" {
			t.Errorf("Expected fresh name, have existing symbol %s", name)
		}
		if seen[name] {
			t.Errorf("Expected fresh names to be unique, %s handed out twice", name)
		}
		seen[name] = true
		if !names.Used(name) {
			t.Errorf("Expected %s to be registered after handing it out", name)
		}
	}
	if !seen["S2"] {
		t.Errorf("Expected S2 to be available, as s2 is a different (terminal) symbol")
	}
}

func TestFreshNamesAreSessionScoped(t *testing.T) {
	g := New("S", []Rule{NewRule("S", "a")})
	n1, n2 := NewNames(g), NewNames(g)
	if a, b := n1.FreshNonTerminal(), n2.FreshNonTerminal(); a != b {
		t.Errorf("Expected independent allocators to hand out identical names, have %s and %s", a, b)
	}
}
