// Package normalize converts raw, human-entered field values into canonical
// typed values.
//
// Transaction exports arrive with inconsistent formatting: timestamps written
// with semicolons, stray commas or "A.M."/"P.M." meridiems, and prices mixing
// currency symbols, cent signs, and ambiguous thousands/decimal separators.
// This package cleans both kinds of values with a fixed, order-sensitive set
// of rewrite rules and parses the result.
//
// # Failure Model
//
// Normalization never returns an error. A value that cannot be parsed after
// cleaning yields nil, and callers exclude the row from any computation that
// requires the field. Both normalizers are idempotent on already-canonical
// input.
package normalize
