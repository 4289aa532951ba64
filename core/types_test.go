package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvtree/core"
)

// sampleTree builds 1(2(4,5),3(_,6)).
func sampleTree() *core.Node[int] {
	return core.NewNode(1,
		core.NewNode(2, core.NewLeaf(4), core.NewLeaf(5)),
		core.NewNode(3, nil, core.NewLeaf(6)),
	)
}

func TestNewLeaf(t *testing.T) {
	n := core.NewLeaf("x")
	assert.Equal(t, "x", n.Value)
	assert.Nil(t, n.Left)
	assert.Nil(t, n.Right)
	assert.True(t, n.IsLeaf())
}

func TestNewNode_Children(t *testing.T) {
	l, r := core.NewLeaf(2), core.NewLeaf(3)
	n := core.NewNode(1, l, r)
	assert.Same(t, l, n.Left)
	assert.Same(t, r, n.Right)
	assert.False(t, n.IsLeaf())
}

func TestIsLeaf_Nil(t *testing.T) {
	var n *core.Node[int]
	assert.False(t, n.IsLeaf(), "nil is not a leaf")
}
