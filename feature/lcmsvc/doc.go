// Package lcmsvc exposes the least-common-multiple calculation endpoint.
//
// The endpoint answers GET requests carrying x and y integer query
// parameters with the LCM as plain text. Missing, non-integer, or negative
// input yields the literal sentinel "NaN" with a 200 status; clients of the
// original service depend on that exact behavior.
package lcmsvc
