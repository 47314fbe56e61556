package grammar

import "errors"

// Sentinel errors for grammar construction and loading.
var (
	// ErrInvalidPath indicates a grammar file path is missing, empty, or
	// does not end in ".txt" (§6's Grammar file loader contract).
	ErrInvalidPath = errors.New("grammar: invalid file path")

	// ErrInvalidGrammar indicates CFG text could not be parsed: an
	// unparseable production line, a head that is not a variable token, or
	// a line with no "->".
	ErrInvalidGrammar = errors.New("grammar: invalid grammar text")

	// ErrInvalidECFGFormat indicates ECFG text violates §4.5's one-rule-
	// per-line, one-rule-per-head contract: zero or more than one "->" on
	// a line, or a variable with more than one rule.
	ErrInvalidECFGFormat = errors.New("grammar: invalid ECFG format")
)
