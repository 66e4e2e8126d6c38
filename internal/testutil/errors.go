package testutil

import "errors"

// ErrSimulated is returned by test doubles that are told to fail.
var ErrSimulated = errors.New("simulated failure")
