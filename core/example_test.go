package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// ExampleNode builds the six-node sample tree and inspects it.
//
//	    1
//	   / \
//	  2   3
//	 / \   \
//	4   5   6
func ExampleNode() {
	root := core.NewNode(1,
		core.NewNode(2, core.NewLeaf(4), core.NewLeaf(5)),
		core.NewNode(3, nil, core.NewLeaf(6)),
	)

	fmt.Println(root)
	fmt.Println("size:", core.Size(root), "height:", core.Height(root), "leaves:", core.Leaves(root))
	fmt.Println("valid:", core.Validate(root) == nil)

	// Output:
	// 1(2(4,5),3(_,6))
	// size: 6 height: 3 leaves: 3
	// valid: true
}

// ExampleMap converts an int tree into a string tree of the same shape.
func ExampleMap() {
	root := core.NewNode(10, core.NewLeaf(20), nil)
	labels := core.Map(root, func(v int) string { return fmt.Sprintf("n%d", v) })

	fmt.Println(labels)
	// Output:
	// n10(n20,_)
}
