package session

import "errors"

// ErrInvalidTimeRange rejects sessions whose end precedes their start.
// Rejection happens here, at write time, so aggregation never sees a
// negative duration.
var ErrInvalidTimeRange = errors.New("session end time precedes start time")

// ErrNegativeCount rejects negative item counts.
var ErrNegativeCount = errors.New("item counts must be non-negative")

// ErrForbidden signals the actor may not modify this session log.
var ErrForbidden = errors.New("not allowed to modify this session log")
