package grammar

import "sync"

// Variable is an interned nonterminal symbol: its name plus a stable
// integer ID assigned on first use. cfpq's matrix variant does not use the
// ID: it keys its per-variable matrices by the variable's name.
type Variable struct {
	name string
	id   int
}

// String returns the variable's textual name.
func (v Variable) String() string { return v.name }

// ID returns the variable's stable integer ID.
func (v Variable) ID() int { return v.id }

// Equal reports whether two Variables name the same symbol.
func (v Variable) Equal(other Variable) bool { return v.id == other.id }

// symbolTable interns Variable names to stable integer IDs. Each CFG/ECFG
// owns its own table so IDs stay dense and reproducible for that grammar,
// rather than leaking a global counter across unrelated grammars parsed in
// the same process.
type symbolTable struct {
	mu    sync.Mutex
	byID  []string
	index map[string]int
}

func newSymbolTable() *symbolTable {
	return &symbolTable{index: make(map[string]int)}
}

func (t *symbolTable) intern(name string) Variable {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id, ok := t.index[name]; ok {
		return Variable{name: name, id: id}
	}
	id := len(t.byID)
	t.byID = append(t.byID, name)
	t.index[name] = id
	return Variable{name: name, id: id}
}

// Symbol is one element of a production body: either a Variable or a
// terminal string, never both.
type Symbol struct {
	Variable   Variable
	Terminal   string
	IsVariable bool
}

// VarSymbol wraps v as a body symbol.
func VarSymbol(v Variable) Symbol { return Symbol{Variable: v, IsVariable: true} }

// TermSymbol wraps a as a terminal body symbol.
func TermSymbol(a string) Symbol { return Symbol{Terminal: a} }

// isVariableToken reports whether tok should be read as a variable name:
// begins with an uppercase letter, per §6's "Variables begin with an
// uppercase letter" rule.
func isVariableToken(tok string) bool {
	if tok == "" {
		return false
	}
	r := tok[0]
	return r >= 'A' && r <= 'Z'
}

// epsilonTokens is the set of tokens §6 recognizes as the empty body.
var epsilonTokens = map[string]bool{
	"epsilon": true,
	"$":       true,
	"ε":       true,
	"ϵ":       true,
	"Є":       true,
}

func isEpsilonToken(tok string) bool {
	return epsilonTokens[tok]
}
