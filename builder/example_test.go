package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvtree/builder"
)

// ExampleBuildTree builds a complete tree of seven labelled nodes.
func ExampleBuildTree() {
	root, err := builder.BuildTree(builder.SymbolLabel, builder.Complete(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(root)

	// Output:
	// A(B(D,E),C(F,G))
}

// ExamplePath shows the three Path orientations.
func ExamplePath() {
	for _, side := range []builder.Side{builder.SideLeft, builder.SideRight, builder.SideZigzag} {
		root, _ := builder.BuildTree(builder.OneBasedValue, builder.Path(3, side))
		fmt.Printf("%-6s %v\n", side, root)
	}

	// Output:
	// left   1(2(3,_),_)
	// right  1(_,2(_,3))
	// zigzag 1(2(_,3),_)
}

// ExampleParseInts reads the compact notation.
func ExampleParseInts() {
	root, err := builder.ParseInts("1(2(4,5),3(_,6))")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(root.Value, root.Left.Value, root.Right.Right.Value)

	_, err = builder.ParseInts("1(2")
	fmt.Println(err)

	// Output:
	// 1 2 6
	// Parse: offset 3: expected ',', got end of input: builder: syntax error
}
