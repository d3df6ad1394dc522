package state

import "errors"

// ErrNilState is returned by New, and named in the panic raised by
// TransitionTo, when a nil State is supplied.
var ErrNilState = errors.New("nil state")

// ErrUnknownState is returned by Lookup for names that match no variant.
var ErrUnknownState = errors.New("unknown state")
