package grammar

import "errors"

// ErrEmptyLanguage is returned when the start symbol of a grammar cannot
// derive any terminal word.
var ErrEmptyLanguage = errors.New("grammar is not habitable: language is empty")

// ErrPrecondition is returned from a transformation stage if its input
// grammar does not satisfy the stage's precondition.
var ErrPrecondition = errors.New("grammar violates stage precondition")

// ErrNotCNF is returned by operations requiring a grammar in Chomsky Normal Form.
var ErrNotCNF = errors.New("grammar is not in Chomsky Normal Form")
