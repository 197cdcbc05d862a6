// Package subtable holds a complete substitution score table: a mapping
// from every (position in alphabet A, position in alphabet B) pair to a
// score. The table is validated for completeness and non-duplication at
// construction, so the DP filler's hot-path lookup (ScoreAt) never needs
// to check for a missing entry.
package subtable
