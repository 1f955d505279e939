package membership_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cfpq"
	"github.com/npillmayer/cfpq/grammar"
	"github.com/npillmayer/cfpq/internal/testdata"
	"github.com/npillmayer/cfpq/membership"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var r = grammar.NewRule

func TestCYKAgreesWithReference(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, sample := range testdata.Samples() {
		cnf, err := grammar.ToCNF(sample.Grammar)
		if err != nil {
			t.Fatalf("%s: %v", sample.Name, err)
		}
		for _, w := range testdata.Words([]string{"a", "b", "c"}, 5) {
			accept, err := membership.CYK(cnf, w)
			if err != nil {
				t.Fatal(err)
			}
			if want := testdata.Derives(sample.Grammar, w); accept != want {
				t.Errorf("%s: word %q: Expected derivable = %v, have %v", sample.Name,
					strings.Join(w, ""), want, accept)
			}
		}
	}
}

func TestCYKRequiresCNF(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := grammar.New("S", []grammar.Rule{r("S", "a", "S", "b"), r("S", "eps")})
	if _, err := membership.CYK(g, []string{"a", "b"}); !errors.Is(err, grammar.ErrNotCNF) {
		t.Errorf("Expected CYK to reject non-CNF grammar, error is %v", err)
	}
}

func TestCYKEmptyWord(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	withEps := grammar.New("S0", []grammar.Rule{r("S0", "eps"), r("S0", "a")})
	if ok, _ := membership.CYK(withEps, nil); !ok {
		t.Errorf("Expected empty word to be derivable")
	}
	without := grammar.New("S", []grammar.Rule{r("S", "a")})
	if ok, _ := membership.CYK(without, nil); ok {
		t.Errorf("Expected empty word not to be derivable")
	}
	if ok, _ := membership.CYK(without, []string{"x"}); ok {
		t.Errorf("Expected unknown terminal not to be derivable")
	}
}

func TestEarley(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := grammar.New("S", []grammar.Rule{r("S", "a", "S", "b"), r("S", "a", "b")})
	var words = []struct {
		word   string
		accept bool
	}{
		{"ab", true},
		{"aabb", true},
		{"aaabbb", true},
		{"aab", false},
		{"ba", false},
		{"abab", false},
		{"ac", false},
	}
	for _, x := range words {
		w := strings.Split(x.word, "")
		accept, err := membership.Earley(g, w)
		if err != nil {
			t.Fatalf("word %q: %v", x.word, err)
		}
		if accept != x.accept {
			t.Errorf("word %q: Expected derivable = %v, have %v", x.word, x.accept, accept)
		}
		cnf, err := grammar.ToCNF(g)
		if err != nil {
			t.Fatal(err)
		}
		if cyk, _ := membership.CYK(cnf, w); cyk != accept {
			t.Errorf("word %q: Expected CYK and Earley to agree", x.word)
		}
	}
}

func TestEarleyEmptyLanguage(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := grammar.New("S", []grammar.Rule{r("S", "a", "S")})
	accept, err := membership.Earley(g, []string{"a"})
	if err != nil || accept {
		t.Errorf("Expected every word to be rejected for empty language, have %v / %v", accept, err)
	}
}

func TestEarleyEmptyWord(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := grammar.New("S", []grammar.Rule{r("S", "a", "S", "b"), r("S", cfpq.Epsilon)})
	for _, x := range []struct {
		word   string
		accept bool
	}{
		{"", true},
		{"ab", true},
		{"aabb", true},
		{"a", false},
	} {
		accept, err := membership.Earley(g, strings.Split(x.word, ""))
		if err != nil || accept != x.accept {
			t.Errorf("word %q: Expected derivable = %v, have %v / %v", x.word, x.accept, accept, err)
		}
	}
}
