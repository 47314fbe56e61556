// Package grammar models context-free grammars (§3's CFG / ECFG / RSM) and
// the transformations §4.5 describes between them: CFG→weak-CNF, CFG→ECFG,
// ECFG→RSM, plus the text formats §6 defines for loading a CFG or ECFG from
// a file.
//
// Grounded in bozhnyukAlex/formal-lang-course's project/cfg_utils.py
// (get_wcnf_from_text's remove_useless_symbols → eliminate_unit_productions
// → remove_useless_symbols → decompose pipeline, and __check_epsilons'
// reachable-epsilon invariant), project/ecfg_utils.py (ECFG.from_text's
// one-rule-per-line, one-rule-per-head format and InvalidECFGFormatException
// triggers), and project/rsm_utils.py (Box/RSM shape, box equality as
// variable equality plus DFA language-equivalence).
//
// Errors and concurrency-free construction follow the conventions observed
// in the katalvlaran-lvlath builder package (sentinel errors via
// errors.New, validate-then-build helpers). ParseCFG and ParseECFG take
// plain arguments; this package has no functional options.
package grammar
