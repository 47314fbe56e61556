// Package regexlang parses the textual regex syntax this engine accepts —
// union `|`, concatenation by juxtaposition, Kleene star `*`, parentheses,
// and `$` for ε — into an automaton.NFA via Thompson construction, then
// reduces it to a canonical minimal DFA (§4.2's regex→min-DFA pipeline:
// parse, determinize, minimize).
//
// The parser and Thompson-construction rules are grounded in
// mabhi256-codecrafters-grep-go's app/nfa.NFAParser (recursive-descent over
// alternation/sequence/quantified-atom, with Alternate/Concatenate/
// buildKleeneStar building NFA fragments with exactly one start and one
// accept state per fragment), adapted from byte-literal atoms to this
// module's string-label alphabet and with backreferences, character
// classes, and anchors dropped since §6 only asks for this reduced syntax.
package regexlang
