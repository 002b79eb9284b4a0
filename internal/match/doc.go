// Package match provides Levenshtein distance and nearest-name suggestions
// used to explain unknown almanac category names.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Similarity: normalized 0..1 similarity score
//   - Suggest: ranks known names closest to an unknown one
package match
