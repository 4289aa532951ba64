// Package traversal implements eight classic binary-tree walks over
// core.Node: leaf sums, internal-node counts, post-order strings,
// level-order collection, distinct-value counting, increasing-path
// detection, shape comparison and root-to-leaf path enumeration.
//
// What:
//
//   - SumLeafNodes:               sum of the values stored at leaves.
//   - CountInternalNodes:         number of nodes with at least one child.
//   - BuildPostOrderString:       left, right, node concatenation of values.
//   - CollectLevelOrderValues:    breadth-first values, top-down, left-to-right.
//   - CountDistinctValues:        cardinality of the set of stored values.
//   - HasStrictlyIncreasingPath:  does some root-to-leaf path strictly increase?
//   - HaveSameShape:              identical present/absent child layout?
//   - FindAllRootToLeafPaths:     every root-to-leaf path, pre-order.
//
// Contract:
//
//   - Every function accepts a nil root and returns a defined zero result
//     (0, "", empty slice, false; true for two empty trees in HaveSameShape).
//   - Inputs are never mutated, so calls are idempotent and safe to run
//     concurrently on the same tree.
//   - No function returns an error or panics on a well-formed tree. Cyclic
//     input is outside the contract and does not terminate; see core.Validate.
//
// Complexity:
//
//   - Time O(n) for every function.
//   - Memory O(h) recursion for the recursive walks, O(w) queue for the
//     level-order walk (w = widest level), O(n) for the distinct set and
//     O(L·h) output for path enumeration (L = leaves).
package traversal
