package grammar

import (
	"sort"
	"strings"

	"github.com/kvryabov/langreach/regexlang"
)

// ECFGProduction is a single ECFG rule: exactly one regex body per
// variable head.
type ECFGProduction struct {
	Head Variable
	Body string // regex text over terminals and variables, regexlang syntax
}

// ECFG is an Extended CFG (§3): one regex body per variable, built from a
// CFG by unioning per-head bodies, or parsed directly from text.
type ECFG struct {
	start       Variable
	productions []ECFGProduction
	table       *symbolTable
}

// Start returns the ECFG's start symbol.
func (e *ECFG) Start() Variable { return e.start }

// Productions returns the ECFG's productions, one per variable.
func (e *ECFG) Productions() []ECFGProduction {
	return append([]ECFGProduction(nil), e.productions...)
}

// symbolText renders a body Symbol the way regexlang.Parse expects to read
// it back: a variable or terminal becomes a single-character-joined token
// stream, matching this module's single-character alphabet convention
// (§6's regex syntax has no multi-character literal escaping).
func symbolText(s Symbol) string {
	if s.IsVariable {
		return s.Variable.name
	}
	return s.Terminal
}

// CFGToECFG converts c to an ECFG by unioning, for each variable, the
// regex bodies of every production with that head; an empty CFG body
// becomes the epsilon regex `$`.
//
// Grounded in cfg_utils.cfg_to_ecfg (dict keyed by head, Regex.union per
// extra body, `$` for an empty pyformlang body).
func CFGToECFG(c *CFG) *ECFG {
	byHead := make(map[int][]string)
	var headOrder []Variable
	seen := make(map[int]bool)

	for _, p := range c.productions {
		if !seen[p.Head.id] {
			seen[p.Head.id] = true
			headOrder = append(headOrder, p.Head)
		}

		if len(p.Body) == 0 {
			byHead[p.Head.id] = append(byHead[p.Head.id], "$")
			continue
		}
		var parts []string
		for _, s := range p.Body {
			parts = append(parts, symbolText(s))
		}
		byHead[p.Head.id] = append(byHead[p.Head.id], strings.Join(parts, ""))
	}

	productions := make([]ECFGProduction, 0, len(headOrder))
	for _, head := range headOrder {
		bodies := byHead[head.id]
		text := bodies[0]
		for _, b := range bodies[1:] {
			text = "(" + text + ")|(" + b + ")"
		}
		productions = append(productions, ECFGProduction{Head: head, Body: text})
	}

	return &ECFG{start: c.start, productions: productions, table: c.table}
}

// ParseECFG parses ECFG text in §4.5/§6's format: one rule per line,
// `HEAD -> REGEX`, exactly one rule per head. start names the grammar's
// start symbol; "" defaults to "S".
//
// Returns ErrInvalidECFGFormat when a line has zero or more than one
// `->`, or a variable has more than one rule, and ErrInvalidRegex if a
// body fails regexlang.Parse.
//
// Grounded in ecfg_utils.ECFG.from_text.
func ParseECFG(text string, start string) (*ECFG, error) {
	if start == "" {
		start = "S"
	}

	table := newSymbolTable()
	startVar := table.intern(start)

	seenHeads := make(map[int]bool)
	var productions []ECFGProduction

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		parts := strings.Split(line, "->")
		if len(parts) != 2 {
			return nil, ErrInvalidECFGFormat
		}

		headText := strings.TrimSpace(parts[0])
		bodyText := strings.TrimSpace(parts[1])
		if headText == "" {
			return nil, ErrInvalidECFGFormat
		}

		head := table.intern(headText)
		if seenHeads[head.id] {
			return nil, ErrInvalidECFGFormat
		}
		seenHeads[head.id] = true

		if _, err := regexlang.Parse(bodyText); err != nil {
			return nil, err
		}

		productions = append(productions, ECFGProduction{Head: head, Body: bodyText})
	}

	if len(productions) == 0 {
		return nil, ErrInvalidECFGFormat
	}

	return &ECFG{start: startVar, productions: productions, table: table}, nil
}

// Variables returns the ECFG's variables, sorted by name.
func (e *ECFG) Variables() []Variable {
	out := make([]Variable, 0, len(e.productions))
	for _, p := range e.productions {
		out = append(out, p.Head)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
