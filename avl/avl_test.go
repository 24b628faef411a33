package avl

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

type intTree = Tree[int, int, LessFunc[int]]

func makeIntTree() intTree {
	return MakeTree[int, int](LessFunc[int](cmp.Less[int]))
}

func newIntNode(k int) *Node[int, int] {
	return &Node[int, int]{Key: k, Value: k}
}

func keysOf[V any](entries []Entry[int, V]) []int {
	keys := make([]int, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}

func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}

func TestAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intrusive.avl")
	defer teardown()

	tree := makeIntTree()
	require.Equal(t, ";", tree.String())
	require.Equal(t, 0, tree.Height())
	for _, k := range []int{7, 3, 5, 10, 2} {
		require.Nil(t, tree.Add(newIntNode(k)))
		tree.CheckIntegrity()
	}
	require.Equal(t, []int{2, 3, 5, 7, 10}, keysOf(tree.Append(nil)))
	require.Equal(t, "((2:2)3:3)5:5(7:7(10:10))", tree.String())
	require.Equal(t, 5, tree.Len())
	require.Equal(t, 3, tree.Height())
	for _, leaf := range []int{2, 10} {
		n := tree.Find(leaf)
		require.NotNil(t, n)
		require.Nil(t, n.Left())
		require.Nil(t, n.Right())
	}
	require.Nil(t, tree.Find(4))
	require.Nil(t, tree.Find(11))
}

func TestAddReplaces(t *testing.T) {
	tree := makeIntTree()
	for _, k := range []int{7, 3, 5, 10, 2} {
		tree.Add(newIntNode(k))
	}
	old := tree.Find(3)
	left, right, balance := old.Left(), old.Right(), old.Balance()
	require.NotNil(t, left)

	n := &Node[int, int]{Key: 3, Value: 300}
	replaced := tree.Add(n)
	require.Same(t, old, replaced)
	require.True(t, replaced.canonical())
	require.Same(t, n, tree.Find(3))
	require.Same(t, left, n.Left())
	require.Same(t, right, n.Right())
	require.Equal(t, balance, n.Balance())
	require.Same(t, n, tree.Root().Left())
	require.Equal(t, 5, tree.Len())
	tree.CheckIntegrity()

	// A displaced node is unlinked and may be added again.
	root := tree.Root()
	old.Key = root.Key
	require.Same(t, root, tree.Add(old))
	require.Same(t, old, tree.Root())
	tree.CheckIntegrity()
}

func TestAddPreconditions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intrusive")
	defer teardown()

	tree := makeIntTree()
	requirePanicsWith(t, ErrNotCanonical, func() { tree.Add(nil) })

	root := newIntNode(1)
	tree.Add(root)
	requirePanicsWith(t, ErrNotCanonical, func() { tree.Add(root) })

	child := newIntNode(2)
	tree.Add(child)
	requirePanicsWith(t, ErrNotCanonical, func() { tree.Add(root) })

	dirty := newIntNode(3)
	dirty.balance = 1
	requirePanicsWith(t, ErrNotCanonical, func() { tree.Add(dirty) })
}

func TestCheckIntegrityDetectsCorruption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intrusive")
	defer teardown()

	tree := makeIntTree()
	for i := 0; i < 10; i++ {
		tree.Add(newIntNode(i))
	}
	tree.CheckIntegrity()

	tree.Root().balance++
	requirePanicsWith(t, ErrCorrupt, tree.CheckIntegrity)
	tree.Root().balance--

	tree.Root().Key = 100
	requirePanicsWith(t, ErrCorrupt, tree.CheckIntegrity)
	tree.Root().Key = tree.Root().Value

	tree.length++
	requirePanicsWith(t, ErrCorrupt, tree.CheckIntegrity)
}

func TestRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := makeIntTree()
	var model []int
	for i := 0; i < 2000; i++ {
		k := rng.Intn(700)
		replaced := tree.Add(newIntNode(k))
		if idx, found := slices.BinarySearch(model, k); found {
			require.NotNil(t, replaced)
			require.Equal(t, k, replaced.Key)
		} else {
			require.Nil(t, replaced)
			model = slices.Insert(model, idx, k)
		}
		if i%50 == 0 {
			tree.CheckIntegrity()
		}
	}
	tree.CheckIntegrity()
	require.Equal(t, model, keysOf(tree.Append(nil)))
	require.Equal(t, len(model), tree.Len())

	// 1.44 * log2(700) is just under 14.
	require.LessOrEqual(t, tree.Height(), 14)

	var fromAll []int
	for k, v := range tree.All() {
		require.Equal(t, k, v)
		fromAll = append(fromAll, k)
	}
	require.Equal(t, model, fromAll)
}

func TestAscendingInsertStaysBalanced(t *testing.T) {
	tree := makeIntTree()
	const n = 1<<10 - 1
	for i := 0; i < n; i++ {
		tree.Add(newIntNode(i))
	}
	tree.CheckIntegrity()
	// Sequential insertion into an AVL tree yields a perfect tree.
	require.Equal(t, 10, tree.Height())
	require.Equal(t, 1<<9-1, tree.Root().Key)
}

// sizeAug stores the size of each node's subtree in its value and logs the
// order in which nodes are updated.
type sizeAug struct {
	log *[]int
}

func (sizeAug) Less(a, b int) bool { return a < b }

func (a sizeAug) Update(n *Node[int, int]) {
	n.Value = 1 + size(n.Left()) + size(n.Right())
	if a.log != nil {
		*a.log = append(*a.log, n.Key)
	}
}

func size(n *Node[int, int]) int {
	if n == nil {
		return 0
	}
	return n.Value
}

func checkSizes(t *testing.T, n *Node[int, int]) int {
	if n == nil {
		return 0
	}
	s := 1 + checkSizes(t, n.Left()) + checkSizes(t, n.Right())
	require.Equalf(t, s, n.Value, "size of subtree at %d", n.Key)
	return s
}

func TestAugmenterOrder(t *testing.T) {
	var log []int
	tree := MakeTree[int, int](sizeAug{log: &log})
	for _, k := range []int{2, 1, 3} {
		tree.Add(&Node[int, int]{Key: k})
	}
	require.Equal(t, "(1:1)2:3(3:1)", tree.String())

	// Plain descent: every node on the path, bottom-up.
	log = log[:0]
	tree.Add(&Node[int, int]{Key: 4})
	require.Equal(t, []int{4, 3, 2}, log)

	// Rotation at 3: the lowered node before the lifted one, then the rest
	// of the path.
	log = log[:0]
	tree.Add(&Node[int, int]{Key: 5})
	require.Equal(t, []int{5, 4, 3, 4, 2}, log)
	require.Equal(t, "(1:1)2:5((3:1)4:3(5:1))", tree.String())

	// Single rotation at the root.
	log = log[:0]
	tree.Add(&Node[int, int]{Key: 6})
	require.Equal(t, []int{6, 5, 4, 2, 4}, log)
	require.Equal(t, "((1:1)2:3(3:1))4:6(5:2(6:1))", tree.String())
	tree.Add(&Node[int, int]{Key: 0})
	tree.Add(&Node[int, int]{Key: 7})
	tree.Add(&Node[int, int]{Key: 8})
	tree.CheckIntegrity()
	checkSizes(t, tree.Root())

	// Replacement announces the new node and every ancestor.
	log = log[:0]
	n := &Node[int, int]{Key: 3}
	tree.Add(n)
	require.Equal(t, 1, n.Value)
	require.Equal(t, []int{3, 2, 4}, log)
	checkSizes(t, tree.Root())
}

func TestAugmenterDoubleRotation(t *testing.T) {
	var log []int
	tree := MakeTree[int, int](sizeAug{log: &log})
	tree.Add(&Node[int, int]{Key: 3})
	tree.Add(&Node[int, int]{Key: 1})
	log = log[:0]
	tree.Add(&Node[int, int]{Key: 2})
	// Both lowered nodes, then the new subtree root.
	require.Equal(t, []int{2, 1, 1, 3, 2}, log)
	require.Equal(t, "(1:1)2:3(3:1)", tree.String())
}

func TestAugmenterRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree := MakeTree[int, int](sizeAug{})
	for i := 0; i < 1000; i++ {
		tree.Add(&Node[int, int]{Key: rng.Intn(400)})
		if i%25 == 0 {
			checkSizes(t, tree.Root())
		}
	}
	tree.CheckIntegrity()
	require.Equal(t, tree.Len(), checkSizes(t, tree.Root()))
}

func TestRotations(t *testing.T) {
	for _, tc := range []struct {
		name string
		keys []int
		exp  string
	}{
		{"left-left", []int{3, 2, 1}, "(1:1)2:2(3:3)"},
		{"right-right", []int{1, 2, 3}, "(1:1)2:2(3:3)"},
		{"left-right", []int{3, 1, 2}, "(1:1)2:2(3:3)"},
		{"right-left", []int{1, 3, 2}, "(1:1)2:2(3:3)"},
		{"deep left-right", []int{50, 20, 80, 10, 30, 25}, "((10:10)20:20(25:25))30:30(50:50(80:80))"},
		{"deep right-left", []int{50, 20, 80, 70, 90, 75}, "((20:20)50:50)70:70((75:75)80:80(90:90))"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tree := makeIntTree()
			for _, k := range tc.keys {
				tree.Add(newIntNode(k))
				tree.CheckIntegrity()
			}
			require.Equal(t, tc.exp, tree.String())
		})
	}
}
