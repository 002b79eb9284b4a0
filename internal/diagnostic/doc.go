// Package diagnostic provides coded, line-aware errors and warnings
// collected while reading and routing an almanac.
//
// Key capabilities:
//   - Malformed line errors with 1-based line numbers
//   - Shadowed (overlapping) mapping warnings
//   - "Did you mean" suggestions for unknown category names
package diagnostic
