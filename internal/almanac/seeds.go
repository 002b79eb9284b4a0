package almanac

import (
	"fmt"

	"almanac/internal/diagnostic"
	"almanac/internal/remap"
)

// SeedRanges pairs the seeds as (start, length) ranges.
func (a *Almanac) SeedRanges() ([]remap.Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeeds, len(a.Seeds))
	}

	ranges := make([]remap.Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		r := remap.Range{Start: a.Seeds[i], Length: a.Seeds[i+1]}
		if r.Overflows() {
			d := diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     diagnostic.CodeBadNumber,
				Message:  fmt.Sprintf("seed pair %d (%d %d) runs past the largest 64-bit value", i/2, r.Start, r.Length),
			}

			return nil, fmt.Errorf("%w: %s", ErrSeedOverflow, d.String())
		}

		ranges = append(ranges, r)
	}

	return ranges, nil
}
