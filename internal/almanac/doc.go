// Package almanac reads seed almanacs and solves them with the remap engine.
//
// An almanac lists seed numbers followed by category-to-category mapping
// blocks:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	0 15 37
//
// Each block line is "target source length". The same content can be kept
// as YAML:
//
//	version: "1"
//	seeds: [79, 14, 55, 13]
//	maps:
//	  - from: seed
//	    to: soil
//	    mappings:
//	      - {target: 50, source: 98, length: 2}
//
// # Solving
//
// Part 1 treats every seed as a single value; part 2 pairs seeds into
// (start, length) ranges. Both push their input through the blocks and report
// the lowest location.
//
// # Block order
//
// By default every block runs in file order and headers are only labels.
// Naming a category (Options.From or Options.To) chains blocks by name
// instead, so "soil-to-fertilizer" runs after "seed-to-soil" even when the
// file lists it first. Parsing notes a file whose blocks are out of category
// order with an info diagnostic.
package almanac
