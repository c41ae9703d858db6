package stats

import "errors"

// ErrTargetsUnavailable signals that the bonus configuration could not be
// loaded. Stats computation refuses to run without it: a zero-valued
// targets record would make every target vacuously satisfied and corrupt
// the bonus semantics.
var ErrTargetsUnavailable = errors.New("bonus targets unavailable")
