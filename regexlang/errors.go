package regexlang

import "errors"

// ErrInvalidRegex indicates the input text is not a well-formed regex in
// this package's syntax (unbalanced parentheses, a dangling operator, or an
// empty pattern).
var ErrInvalidRegex = errors.New("regexlang: invalid regex")
