// Package builder provides value schemes that turn node indices into
// payloads for BuildTree.
package builder

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// ValueFn produces the value stored at the node with the given zero-based index.
// It must be pure and deterministic: the same idx always yields the same value.
type ValueFn[T any] func(idx int) T

// IndexValue stores the index itself, e.g. 0→0, 42→42.
func IndexValue(idx int) int {
	return idx
}

// OneBasedValue stores idx+1, matching the usual 1-based drawings of trees.
func OneBasedValue(idx int) int {
	return idx + 1
}

// DecimalLabel returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalLabel(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolLabel returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Panics if idx < 0 or idx > 25.
func SymbolLabel(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolLabel: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnLabel returns the “Excel-style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnLabel: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// Values materializes fn over the indices 0..n-1.
// Handy for computing expected traversal outputs in tests.
func Values[T any](n int, fn ValueFn[T]) []T {
	if n <= 0 {
		return []T{}
	}

	return lo.Map(lo.Range(n), func(idx int, _ int) T { return fn(idx) })
}
