package repository

import "errors"

// ErrNotFound is returned when a key has no stored value. Callers translate
// it into a domain-level outcome (an empty history) instead of leaking the
// driver's own error, e.g. sql.ErrNoRows or redis.Nil.
var ErrNotFound = errors.New("repository: not found")
