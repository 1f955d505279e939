package grammar

import (
	"strings"

	"github.com/npillmayer/cfpq"
)

// Rule is a production head → body. Rules are immutable.
//
// Construction normalizes the body: the empty marker never appears together
// with other symbols. A body which is empty after removing the empty markers
// is replaced by a body consisting of the empty marker only.
type Rule struct {
	head string
	body []string
	key  string
}

// NewRule creates a rule head → body.
func NewRule(head string, body ...string) Rule {
	b := make([]string, 0, len(body))
	for _, sym := range body {
		if !cfpq.IsEpsilon(sym) {
			b = append(b, sym)
		}
	}
	if len(b) == 0 {
		b = append(b, cfpq.Epsilon)
	}
	return Rule{
		head: head,
		body: b,
		key:  head + " → " + strings.Join(b, " "),
	}
}

// Head returns the left hand side of the rule.
func (r Rule) Head() string {
	return r.head
}

// Body returns a copy of the right hand side of the rule.
func (r Rule) Body() []string {
	b := make([]string, len(r.body))
	copy(b, r.body)
	return b
}

// Len returns the number of symbols in the body. An empty production has length 1.
func (r Rule) Len() int {
	return len(r.body)
}

// Symbol returns the body symbol at position i.
func (r Rule) Symbol(i int) string {
	return r.body[i]
}

// IsEmptyProduction is true for rules A → eps.
func (r Rule) IsEmptyProduction() bool {
	return len(r.body) == 1 && cfpq.IsEpsilon(r.body[0])
}

// IsUnit is true for rules A → B, with B a non-terminal.
func (r Rule) IsUnit() bool {
	return len(r.body) == 1 && cfpq.IsNonTerminal(r.body[0])
}

// IsFullyTerminal is true if every body symbol is a terminal, including the empty marker.
func (r Rule) IsFullyTerminal() bool {
	for _, sym := range r.body {
		if !cfpq.IsTerminal(sym) {
			return false
		}
	}
	return true
}

// Mentions is true if sym occurs in the body.
func (r Rule) Mentions(sym string) bool {
	for _, s := range r.body {
		if s == sym {
			return true
		}
	}
	return false
}

// NonTerminals returns the distinct non-terminals of the body, in order of appearance.
func (r Rule) NonTerminals() []string {
	var nts []string
	for i, sym := range r.body {
		if !cfpq.IsNonTerminal(sym) {
			continue
		}
		dup := false
		for _, s := range r.body[:i] {
			if s == sym {
				dup = true
				break
			}
		}
		if !dup {
			nts = append(nts, sym)
		}
	}
	return nts
}

// Equal compares two rules structurally.
func (r Rule) Equal(other Rule) bool {
	return r.Key() == other.Key()
}

// Key is a string uniquely identifying the rule's content.
// Rules with identical heads and bodies have identical keys.
func (r Rule) Key() string {
	if r.key == "" { // zero value
		return r.head + " → "
	}
	return r.key
}

// withHead returns the rule's body under a different head.
func (r Rule) withHead(head string) Rule {
	return NewRule(head, r.body...)
}

func (r Rule) String() string {
	return r.Key()
}
