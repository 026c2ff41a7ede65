package container

import "errors"

// ErrUsage marks errors caused by wrong command-line input.
var ErrUsage = errors.New("usage")
