// Package puzzle registers daily puzzle solvers and runs them by
// "<day>.<part>" selector against an input file.
//
// Day 5 (the seed almanac) is registered by Default.
package puzzle
