// Package builder produces deterministic binary-tree fixtures for tests,
// examples and benchmarks.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildTree(valueFn, con, opts...): runs one Constructor, validates the
//     resulting shape with core.Validate and maps node indices to values.
//   - Shape constructors (Constructor implementations, values are indices):
//     – Complete(n):     heap layout, node i has children 2i+1 and 2i+2.
//     – Perfect(depth):  complete tree with 2^depth-1 nodes.
//     – Path(n, side):   a single chain hanging left, right or zig-zagging.
//     – Random(n):       seeded random attachment, needs WithSeed/WithRand.
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – WithSeed, WithRand.
//   - Value schemes (ValueFn implementations):
//     – IndexValue, OneBasedValue, DecimalLabel, SymbolLabel, ExcelColumnLabel.
//   - Literal trees:
//     – FromLevelOrder(slots): level-order slice, nil marks an absent child.
//     – Parse / ParseInts:     compact notation such as "1(2(4,5),3(_,6))".
//
// Guarantees:
//
//   - Determinism: same constructor, options and seed ⇒ identical tree.
//   - Fast-fail on meaningless option parameters via panics in option constructors.
//   - Runtime parameter errors are sentinel errors wrapped with the constructor
//     name ("Path: n=0 < min=1: builder: too few nodes").
//   - Every constructed tree satisfies core.Validate.
package builder
