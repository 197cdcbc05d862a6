// Package alphabet models an ordered, deduplicated set of symbols. Both
// sequences in an alignment carry their own alphabet — they may differ, as
// with a DNA alphabet on one side and an RNA alphabet on the other — and a
// substitution table is keyed by a pair of alphabet positions rather than
// raw runes so lookups stay O(1).
package alphabet
