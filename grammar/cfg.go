package grammar

import (
	"sort"
	"strings"
)

// Production is one CFG rule head → body. An empty Body denotes an
// ε-production (head → ε).
type Production struct {
	Head Variable
	Body []Symbol
}

// CFG is a context-free grammar: a start symbol plus a set of productions.
// Multiple productions may share the same head — §6's text format allows a
// head to recur across lines as well as within one line's `|`-separated
// bodies.
type CFG struct {
	start       Variable
	productions []Production
	table       *symbolTable
	variables   map[int]Variable
	terminals   map[string]struct{}
}

// Start returns the grammar's start symbol.
func (c *CFG) Start() Variable { return c.start }

// Productions returns the grammar's productions in parse order.
func (c *CFG) Productions() []Production {
	return append([]Production(nil), c.productions...)
}

// Variables returns every variable appearing as a head or body symbol,
// sorted by name.
func (c *CFG) Variables() []Variable {
	out := make([]Variable, 0, len(c.variables))
	for _, v := range c.variables {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Terminals returns every terminal symbol appearing in any body, sorted.
func (c *CFG) Terminals() []string {
	out := make([]string, 0, len(c.terminals))
	for t := range c.terminals {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// GeneratesEpsilon reports whether the start symbol can derive the empty
// word: whether start is "nullable" under the standard nullable-variable
// fixed point (a variable is nullable if it has an empty production, or a
// production whose body is entirely nullable variables).
//
// Supplements cfg_utils.get_wcnf_from_text's reliance on pyformlang's
// CFG.generate_epsilon, carried here as an explicit named operation since
// this module builds CNF by hand rather than delegating to a CFG library.
func (c *CFG) GeneratesEpsilon() bool {
	nullable := make(map[int]bool)
	for {
		changed := false
		for _, p := range c.productions {
			if nullable[p.Head.id] {
				continue
			}
			if len(p.Body) == 0 {
				nullable[p.Head.id] = true
				changed = true
				continue
			}
			allNullableVars := true
			for _, sym := range p.Body {
				if !sym.IsVariable || !nullable[sym.Variable.id] {
					allNullableVars = false
					break
				}
			}
			if allNullableVars {
				nullable[p.Head.id] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return nullable[c.start.id]
}

// ParseCFG parses CFG text in §6's format: one production per line, `HEAD
// -> BODY1 | BODY2 | … | BODYn`, variables starting uppercase, terminals
// otherwise, tokens whitespace-separated, epsilon written as any of
// `epsilon`, `$`, `ε`, `ϵ`, `Є`. Blank lines are skipped. start names the
// grammar's start symbol; "" defaults to "S" per §6.
//
// Returns ErrInvalidGrammar if the text has no productions, a line has no
// `->`, or a head is not a single uppercase-starting token.
//
// Grounded in bozhnyukAlex/formal-lang-course's cfg_utils.get_*_from_text,
// which delegates line parsing to pyformlang's CFG.from_text; reimplemented
// here directly since this module has no CFG library dependency.
func ParseCFG(text string, start string) (*CFG, error) {
	if start == "" {
		start = "S"
	}

	table := newSymbolTable()
	startVar := table.intern(start)

	variables := map[int]Variable{startVar.id: startVar}
	terminals := make(map[string]struct{})
	var productions []Production

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		arrowParts := strings.SplitN(line, "->", 2)
		if len(arrowParts) != 2 || strings.Contains(arrowParts[1], "->") {
			return nil, ErrInvalidGrammar
		}

		headText := strings.TrimSpace(arrowParts[0])
		if headText == "" || strings.Fields(headText)[0] != headText || !isVariableToken(headText) {
			return nil, ErrInvalidGrammar
		}
		head := table.intern(headText)
		variables[head.id] = head

		for _, bodyText := range strings.Split(arrowParts[1], "|") {
			tokens := strings.Fields(bodyText)

			var body []Symbol
			for _, tok := range tokens {
				if isEpsilonToken(tok) {
					continue
				}
				if isVariableToken(tok) {
					v := table.intern(tok)
					variables[v.id] = v
					body = append(body, VarSymbol(v))
				} else {
					terminals[tok] = struct{}{}
					body = append(body, TermSymbol(tok))
				}
			}

			productions = append(productions, Production{Head: head, Body: body})
		}
	}

	if len(productions) == 0 {
		return nil, ErrInvalidGrammar
	}

	return &CFG{
		start:       startVar,
		productions: productions,
		table:       table,
		variables:   variables,
		terminals:   terminals,
	}, nil
}
