// Package lvtree is a compact toolkit of binary-tree traversals built on a
// single generic node type.
//
// What is inside?
//
//	core/      - Node[T], leaf predicate, Size/Height/Leaves, Clone/Map, Validate
//	traversal/ - the eight classic walks: leaf sum, internal count, post-order
//	             string, level-order values, distinct count, strictly
//	             increasing path, same shape, all root-to-leaf paths
//	bfs/       - breadth-first walker with hooks, depth limit, child filter, levels
//	dfs/       - depth-first walker (pre/in/post order) and a lazy path iterator
//	builder/   - deterministic fixtures: Complete, Perfect, Path, Random,
//	             FromLevelOrder and the compact notation parser
//
// Quick ASCII example:
//
//	    1
//	   / \
//	  2   3
//	 / \   \
//	4   5   6
//
// is written 1(2(4,5),3(_,6)) by core.Node.String and builder.ParseInts, has
// leaf sum 15, post-order string "452631" and root-to-leaf paths
// [[1 2 4] [1 2 5] [1 3 6]].
//
// Every traversal treats a nil root as the empty tree and never mutates its
// input, so calls are idempotent and safe to share across goroutines.
//
//	go get github.com/katalvlaran/lvtree
package lvtree
