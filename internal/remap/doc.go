// Package remap translates integer ranges through ordered stages of
// fixed-offset interval mappings.
//
// A Stage is an ordered list of Mappings. A value falling inside a mapping's
// source interval is shifted by that mapping's offset; a value outside every
// source interval passes through unchanged. When source intervals overlap,
// the first mapping in scan order wins.
//
// Resolution pipeline:
//  1. Split a range against one mapping → mapped part, leftover before/after
//  2. Resolve a range against a whole stage (leftovers try later mappings)
//  3. Resolve a set of ranges against a stage, then condense the result
//  4. Thread ranges (or a single point) through every stage of a Pipeline
//
// All functions are pure: inputs are never modified, and every produced
// Range has a positive length.
package remap
