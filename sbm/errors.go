package sbm

import "errors"

// ErrTypeMismatch indicates a BoolMatrix operation (Or, Mul) combined two
// matrices of different size.
var ErrTypeMismatch = errors.New("sbm: type mismatch")
