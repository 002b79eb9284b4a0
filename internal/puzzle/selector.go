package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"almanac/utils"
)

// ErrBadSelector is returned for selectors not shaped "<day>.<part>".
var ErrBadSelector = errors.New("selector should be <day#>.<part#>")

// Selector names one part of one day.
type Selector struct {
	Day  int
	Part int
}

func (s Selector) String() string {
	return fmt.Sprintf("%d.%d", s.Day, s.Part)
}

// ParseSelector parses "5.2" style selectors. Part must be 1 or 2.
func ParseSelector(arg string) (Selector, error) {
	fields := strings.Split(strings.TrimSpace(arg), ".")
	if len(fields) != 2 {
		return Selector{}, fmt.Errorf("%w: got %q", ErrBadSelector, arg)
	}

	dayStr, partStr := utils.Unpack2(fields)

	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return Selector{}, fmt.Errorf("%w: day %q is not a number", ErrBadSelector, dayStr)
	}

	part, err := strconv.Atoi(partStr)
	if err != nil {
		return Selector{}, fmt.Errorf("%w: part %q is not a number", ErrBadSelector, partStr)
	}

	if part != 1 && part != 2 {
		return Selector{}, fmt.Errorf("%w: part must be 1 or 2, got %d", ErrBadSelector, part)
	}

	if day <= 0 {
		return Selector{}, fmt.Errorf("%w: day must be positive, got %d", ErrBadSelector, day)
	}

	return Selector{Day: day, Part: part}, nil
}
