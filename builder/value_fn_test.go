package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvtree/builder"
)

// TestLabelFns verifies each string ValueFn both for correct outputs on valid
// inputs and for panics on invalid inputs.
func TestLabelFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.ValueFn[string]
		input       int
		want        string
		shouldPanic bool
	}{
		{"DecimalLabel_zero", builder.DecimalLabel, 0, "0", false},
		{"DecimalLabel_multi", builder.DecimalLabel, 123, "123", false},

		{"SymbolLabel_min", builder.SymbolLabel, 0, "A", false},
		{"SymbolLabel_max", builder.SymbolLabel, 25, "Z", false},
		{"SymbolLabel_neg", builder.SymbolLabel, -1, "", true},
		{"SymbolLabel_tooHigh", builder.SymbolLabel, 26, "", true},

		{"ExcelColumnLabel_zero", builder.ExcelColumnLabel, 0, "A", false},
		{"ExcelColumnLabel_endSingle", builder.ExcelColumnLabel, 25, "Z", false},
		{"ExcelColumnLabel_startDouble", builder.ExcelColumnLabel, 26, "AA", false},
		{"ExcelColumnLabel_ZZ", builder.ExcelColumnLabel, 701, "ZZ", false},
		{"ExcelColumnLabel_AAA", builder.ExcelColumnLabel, 702, "AAA", false},
		{"ExcelColumnLabel_neg", builder.ExcelColumnLabel, -1, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestIntValueFns(t *testing.T) {
	assert.Equal(t, 5, builder.IndexValue(5))
	assert.Equal(t, 6, builder.OneBasedValue(5))
}

func TestValues(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, builder.Values(3, builder.OneBasedValue))
	assert.Equal(t, []string{"A", "B"}, builder.Values(2, builder.SymbolLabel))
	assert.Empty(t, builder.Values(0, builder.IndexValue))
}
