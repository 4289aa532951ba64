package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/core"
)

// TestConstructorErrors asserts the sentinel returned for each invalid input.
func TestConstructorErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		con  builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Complete_zero", builder.Complete(0), nil, builder.ErrTooFewNodes},
		{"Perfect_zero", builder.Perfect(0), nil, builder.ErrTooFewNodes},
		{"Perfect_huge", builder.Perfect(64), nil, builder.ErrBadSize},
		{"Path_neg", builder.Path(-1, builder.SideLeft), nil, builder.ErrTooFewNodes},
		{"Path_badSide", builder.Path(3, builder.Side(9)), nil, builder.ErrUnknownSide},
		{"Random_zero", builder.Random(0), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewNodes},
		{"Random_noRNG", builder.Random(5), nil, builder.ErrNeedRandSource},
		{"nil_constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			root, err := builder.Ints(tc.con, tc.opts...)
			assert.Nil(t, root)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildTree_NilValueFn(t *testing.T) {
	_, err := builder.BuildTree[int](nil, builder.Complete(3))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestComplete(t *testing.T) {
	root, err := builder.Ints(builder.Complete(6))
	require.NoError(t, err)
	assert.Equal(t, "0(1(3,4),2(5,_))", root.String())
	assert.Equal(t, 6, core.Size(root))

	for _, n := range []int{1, 2, 7, 8, 100} {
		root, err = builder.Ints(builder.Complete(n))
		require.NoError(t, err)
		assert.Equal(t, n, core.Size(root))
		// height of a complete tree is floor(log2 n)+1
		h := 0
		for m := n; m > 0; m >>= 1 {
			h++
		}
		assert.Equal(t, h, core.Height(root), "n=%d", n)
	}
}

func TestPerfect(t *testing.T) {
	for depth := 1; depth <= 6; depth++ {
		root, err := builder.Ints(builder.Perfect(depth))
		require.NoError(t, err)
		assert.Equal(t, (1<<depth)-1, core.Size(root))
		assert.Equal(t, depth, core.Height(root))
		assert.Equal(t, 1<<(depth-1), core.Leaves(root))
	}
}

func TestPath(t *testing.T) {
	cases := []struct {
		side builder.Side
		want string
	}{
		{builder.SideLeft, "0(1(2(3,_),_),_)"},
		{builder.SideRight, "0(_,1(_,2(_,3)))"},
		{builder.SideZigzag, "0(1(_,2(3,_)),_)"},
	}
	for _, tc := range cases {
		t.Run(tc.side.String(), func(t *testing.T) {
			root, err := builder.Ints(builder.Path(4, tc.side))
			require.NoError(t, err)
			assert.Equal(t, tc.want, root.String())
			assert.Equal(t, 1, core.Leaves(root))
			assert.Equal(t, 4, core.Height(root))
		})
	}

	root, err := builder.Ints(builder.Path(1, builder.SideLeft))
	require.NoError(t, err)
	assert.True(t, root.IsLeaf())
}

func TestRandom_DeterministicPerSeed(t *testing.T) {
	a, err := builder.Ints(builder.Random(40), builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.Ints(builder.Random(40), builder.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, 40, core.Size(a))
	assert.NoError(t, core.Validate(a))
}

func TestRandom_SingleNode(t *testing.T) {
	root, err := builder.Ints(builder.Random(1), builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, "0", root.String())
}

func TestBuildTree_Labels(t *testing.T) {
	root, err := builder.BuildTree(builder.SymbolLabel, builder.Complete(3))
	require.NoError(t, err)
	assert.Equal(t, "A(B,C)", root.String())
}

func TestFromLevelOrder(t *testing.T) {
	s := builder.Slot[int]
	assert.Nil(t, builder.FromLevelOrder[int](nil))
	assert.Nil(t, builder.FromLevelOrder([]*int{nil, s(1)}))

	root := builder.FromLevelOrder([]*int{s(1), s(2), s(3), s(4), s(5), nil, s(6)})
	assert.Equal(t, "1(2(4,5),3(_,6))", root.String())

	// absent nodes do not consume child slots
	root = builder.FromLevelOrder([]*int{s(1), nil, s(2), s(3), nil, nil, s(4)})
	assert.Equal(t, "1(_,2(3(_,4),_))", root.String())

	// odd-length list: last parent gets only a left child
	root = builder.FromLevelOrder([]*int{s(1), s(2)})
	assert.Equal(t, "1(2,_)", root.String())
}
