package scenario

import "errors"

// ErrUnknownRequest is returned when a configured request names neither
// request1 nor request2.
var ErrUnknownRequest = errors.New("unknown request")

// ErrUnsupportedFormat is returned by LoadConfig for files that are neither
// JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")
