package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/core"
)

func TestSizeHeightLeaves(t *testing.T) {
	cases := []struct {
		name   string
		root   *core.Node[int]
		size   int
		height int
		leaves int
	}{
		{"empty", nil, 0, 0, 0},
		{"leaf", core.NewLeaf(7), 1, 1, 1},
		{"left chain", core.NewNode(1, core.NewNode(2, core.NewLeaf(3), nil), nil), 3, 3, 1},
		{"sample", sampleTree(), 6, 3, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.size, core.Size(tc.root))
			assert.Equal(t, tc.height, core.Height(tc.root))
			assert.Equal(t, tc.leaves, core.Leaves(tc.root))
		})
	}
}

func TestString(t *testing.T) {
	var empty *core.Node[int]
	assert.Equal(t, "_", empty.String())
	assert.Equal(t, "7", core.NewLeaf(7).String())
	assert.Equal(t, "1(2(4,5),3(_,6))", sampleTree().String())
	assert.Equal(t, "a(b,_)", core.NewNode("a", core.NewLeaf("b"), nil).String())
}

func TestClone_Independent(t *testing.T) {
	src := sampleTree()
	cp := core.Clone(src)
	require.Equal(t, src.String(), cp.String())
	assert.NotSame(t, src, cp)
	assert.NotSame(t, src.Left, cp.Left)

	cp.Left.Value = 42
	assert.Equal(t, 2, src.Left.Value, "source must not change")
	assert.Nil(t, core.Clone[int](nil))
}

func TestMap_PreservesShape(t *testing.T) {
	src := sampleTree()
	var seen []int
	out := core.Map(src, func(v int) string {
		seen = append(seen, v)
		return string(rune('a' + v - 1))
	})
	assert.Equal(t, "a(b(d,e),c(_,f))", out.String())
	assert.Equal(t, []int{1, 2, 4, 5, 3, 6}, seen, "Map visits in pre-order")
	assert.Equal(t, "1(2(4,5),3(_,6))", src.String())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, core.Validate[int](nil))
	assert.NoError(t, core.Validate(sampleTree()))

	shared := core.NewLeaf(9)
	dag := core.NewNode(1, shared, shared)
	assert.ErrorIs(t, core.Validate(dag), core.ErrSharedNode)

	loop := core.NewNode(1, nil, nil)
	loop.Right = core.NewNode(2, loop, nil)
	assert.ErrorIs(t, core.Validate(loop), core.ErrCycle)

	self := core.NewLeaf(5)
	self.Left = self
	assert.ErrorIs(t, core.Validate(self), core.ErrCycle)
}
