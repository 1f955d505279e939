// Package ntset implements dense sets of interned non-terminals.
package ntset

// Set is a bit-set of non-terminal indices 0 … size-1.
type Set []uint64

// New creates an empty set able to hold indices 0 … size-1.
func New(size int) Set {
	return make(Set, (size+63)/64)
}

// Has is true if nt is in the set.
func (s Set) Has(nt int) bool {
	return s[nt>>6]&(1<<(uint(nt)&63)) != 0
}

// Set inserts nt.
func (s Set) Set(nt int) {
	s[nt>>6] |= 1 << (uint(nt) & 63)
}

// Unset removes nt.
func (s Set) Unset(nt int) {
	s[nt>>6] &^= 1 << (uint(nt) & 63)
}

// IsEmpty is true if the set has no members.
func (s Set) IsEmpty() bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}
	return true
}
