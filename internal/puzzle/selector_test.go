package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelector(t *testing.T) {
	sel, err := ParseSelector("5.2")
	require.NoError(t, err)
	assert.Equal(t, Selector{Day: 5, Part: 2}, sel)
	assert.Equal(t, "5.2", sel.String())

	sel, err = ParseSelector(" 12.1 ")
	require.NoError(t, err)
	assert.Equal(t, Selector{Day: 12, Part: 1}, sel)
}

func TestParseSelectorErrors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		msg  string
	}{
		{"missing part", "5", `got "5"`},
		{"too many fields", "5.1.2", `got "5.1.2"`},
		{"day not a number", "five.1", `day "five"`},
		{"part not a number", "5.x", `part "x"`},
		{"part out of range", "5.3", "part must be 1 or 2"},
		{"day out of range", "0.1", "day must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSelector(tt.arg)
			require.ErrorIs(t, err, ErrBadSelector)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
