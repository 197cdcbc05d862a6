// Package seq wraps a raw symbol string with the alphabet it was validated
// against. Every symbol is checked and pre-resolved to its alphabet
// position at construction time, so the DP filler never re-validates a
// symbol on the hot path.
package seq
