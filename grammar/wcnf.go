package grammar

// ToWeakCNF transforms c into weak Chomsky Normal Form: remove useless
// symbols, eliminate unit productions, remove useless symbols again, then
// decompose every surviving production into A→BC, A→a, or A→ε, per §4.5.
// Epsilon productions reachable in c are preserved in the result (the
// invariant IsWeakCNF checks).
//
// Grounded in bozhnyukAlex/formal-lang-course's
// cfg_utils.get_wcnf_from_text, which chains pyformlang's
// remove_useless_symbols → eliminate_unit_productions →
// remove_useless_symbols → _get_productions_with_only_single_terminals →
// _decompose_productions; reimplemented here since this module owns its
// own CFG representation rather than wrapping pyformlang.
func (c *CFG) ToWeakCNF() *CFG {
	step1 := removeUselessSymbols(c.productions, c.start)
	step2 := eliminateUnitProductions(step1, c.start)
	step3 := removeUselessSymbols(step2, c.start)
	step4 := decompose(step3, c.table)

	variables := map[int]Variable{c.start.id: c.start}
	terminals := make(map[string]struct{})
	for _, p := range step4 {
		variables[p.Head.id] = p.Head
		for _, s := range p.Body {
			if s.IsVariable {
				variables[s.Variable.id] = s.Variable
			} else {
				terminals[s.Terminal] = struct{}{}
			}
		}
	}

	return &CFG{
		start:       c.start,
		productions: step4,
		table:       c.table,
		variables:   variables,
		terminals:   terminals,
	}
}

// generating reports, for each variable, whether it can derive some
// terminal string: true for a variable with an ε production or a
// production whose body symbols (variables) are all themselves generating.
func generating(productions []Production) map[int]bool {
	gen := make(map[int]bool)
	for {
		changed := false
		for _, p := range productions {
			if gen[p.Head.id] {
				continue
			}
			ok := true
			for _, s := range p.Body {
				if s.IsVariable && !gen[s.Variable.id] {
					ok = false
					break
				}
			}
			if ok {
				gen[p.Head.id] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return gen
}

// reachable computes every variable reachable from start by following
// variable symbols in production bodies.
func reachable(productions []Production, start Variable) map[int]bool {
	byHead := make(map[int][]Production)
	for _, p := range productions {
		byHead[p.Head.id] = append(byHead[p.Head.id], p)
	}

	reached := map[int]bool{start.id: true}
	stack := []Variable{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range byHead[v.id] {
			for _, s := range p.Body {
				if s.IsVariable && !reached[s.Variable.id] {
					reached[s.Variable.id] = true
					stack = append(stack, s.Variable)
				}
			}
		}
	}
	return reached
}

// removeUselessSymbols drops productions whose head, or any variable in
// its body, is not both generating and reachable from start.
func removeUselessSymbols(productions []Production, start Variable) []Production {
	gen := generating(productions)
	reach := reachable(productions, start)
	useful := func(v Variable) bool { return gen[v.id] && reach[v.id] }

	var out []Production
	for _, p := range productions {
		if !useful(p.Head) {
			continue
		}
		ok := true
		for _, s := range p.Body {
			if s.IsVariable && !useful(s.Variable) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, p)
		}
	}
	return out
}

// eliminateUnitProductions removes productions of the form A→B (a single
// variable body) by replacing each with the non-unit productions reachable
// from B through a chain of unit productions, per the standard CFG
// normalization step.
func eliminateUnitProductions(productions []Production, start Variable) []Production {
	byHead := make(map[int][]Production)
	for _, p := range productions {
		byHead[p.Head.id] = append(byHead[p.Head.id], p)
	}

	unitClosure := func(v Variable) map[int]Variable {
		closure := map[int]Variable{v.id: v}
		stack := []Variable{v}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, p := range byHead[cur.id] {
				if len(p.Body) == 1 && p.Body[0].IsVariable {
					target := p.Body[0].Variable
					if _, ok := closure[target.id]; !ok {
						closure[target.id] = target
						stack = append(stack, target)
					}
				}
			}
		}
		return closure
	}

	seen := make(map[int]bool)
	var out []Production
	var heads []Variable
	for _, p := range productions {
		if !seen[p.Head.id] {
			seen[p.Head.id] = true
			heads = append(heads, p.Head)
		}
	}

	for _, head := range heads {
		for _, reachedVar := range unitClosure(head) {
			for _, p := range byHead[reachedVar.id] {
				if len(p.Body) == 1 && p.Body[0].IsVariable {
					continue // unit production itself, already expanded away
				}
				out = append(out, Production{Head: head, Body: p.Body})
			}
		}
	}

	return out
}

// decompose rewrites every production into A→BC, A→a, or A→ε: terminals
// inside a multi-symbol body are wrapped in a fresh helper variable
// (T#<terminal>), and bodies longer than two symbols are chained through
// fresh helper variables (C#<n>) so each production ends up binary.
func decompose(productions []Production, table *symbolTable) []Production {
	var out []Production
	counter := 0
	freshCounter := func() string {
		counter++
		return "C#" + itoaSmall(counter)
	}

	termVar := make(map[string]Variable)
	wrapTerminal := func(a string) Variable {
		if v, ok := termVar[a]; ok {
			return v
		}
		v := table.intern("T#" + a)
		termVar[a] = v
		out = append(out, Production{Head: v, Body: []Symbol{TermSymbol(a)}})
		return v
	}

	for _, p := range productions {
		switch len(p.Body) {
		case 0:
			out = append(out, p)
		case 1:
			out = append(out, p) // already A→a (unit productions were eliminated)
		default:
			symbols := make([]Symbol, len(p.Body))
			for i, s := range p.Body {
				if s.IsVariable {
					symbols[i] = s
				} else {
					symbols[i] = VarSymbol(wrapTerminal(s.Terminal))
				}
			}

			head := p.Head
			for len(symbols) > 2 {
				aux := table.intern(freshCounter())
				out = append(out, Production{Head: head, Body: []Symbol{symbols[0], VarSymbol(aux)}})
				head = aux
				symbols = symbols[1:]
			}
			out = append(out, Production{Head: head, Body: symbols})
		}
	}

	return out
}

func itoaSmall(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// IsWeakCNF reports whether nf is a valid weak-CNF transform of old: every
// production is A→BC, A→a, or A→ε, and every ε-production reachable from
// old's start symbol (in old) is also present in nf.
//
// Grounded in cfg_utils.is_wcnf / __check_epsilons.
func IsWeakCNF(nf *CFG, old *CFG) bool {
	nfVars := make(map[int]bool)
	for _, v := range nf.Variables() {
		nfVars[v.id] = true
	}

	for _, p := range nf.Productions() {
		switch {
		case len(p.Body) == 0:
		case len(p.Body) == 1 && !p.Body[0].IsVariable:
		case len(p.Body) == 2 && p.Body[0].IsVariable && p.Body[1].IsVariable:
		default:
			return false
		}
	}

	reach := reachable(old.Productions(), old.Start())
	nfEpsilonHeads := make(map[int]bool)
	for _, p := range nf.Productions() {
		if len(p.Body) == 0 {
			nfEpsilonHeads[p.Head.id] = true
		}
	}
	for _, p := range old.Productions() {
		if len(p.Body) == 0 && reach[p.Head.id] && !nfEpsilonHeads[p.Head.id] {
			return false
		}
	}

	return true
}
