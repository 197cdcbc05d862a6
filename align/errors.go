package align

import "errors"

// ErrNilSequence is returned when a Request carries a nil A or B sequence.
var ErrNilSequence = errors.New("align: sequence is nil")

// ErrNilTable is returned when a Request carries a nil substitution table.
var ErrNilTable = errors.New("align: substitution table is nil")

// ErrAlphabetMismatch is returned when Table's alphabets do not match the
// alphabets A and B were built against.
var ErrAlphabetMismatch = errors.New("align: table alphabet does not match sequence alphabet")
