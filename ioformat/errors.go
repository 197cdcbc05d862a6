package ioformat

import "errors"

// ErrInputMissing is returned when a required input line is absent.
var ErrInputMissing = errors.New("ioformat: required input line missing")

// ErrInputMalformed is returned when a line does not parse to its expected
// grammar, or a blank line appears where the grammar forbids one.
var ErrInputMalformed = errors.New("ioformat: input line malformed")

// ErrUnknownMode is returned when the mode line is neither 0 nor 1.
var ErrUnknownMode = errors.New("ioformat: mode must be 0 or 1")

// ErrIoFailure is returned when reading input or writing output fails at
// the transport level.
var ErrIoFailure = errors.New("ioformat: I/O failure")
