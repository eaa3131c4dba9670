package fairness

import "errors"

// ErrInvalidParameter is wrapped by every policy constructor's validation
// failure, so callers can test for "bad fairness configuration" generically
// with errors.Is without matching the specific message.
var ErrInvalidParameter = errors.New("fairness: invalid parameter")
