package treap

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// checkInvariants verifies the size and min-heap invariants for every node under n.
func checkInvariants[T any](t *testing.T, n *Node[T]) {
	t.Helper()
	if n == nil {
		return
	}

	if want := Size(n.left) + 1 + Size(n.right); n.size != want {
		t.Errorf("size invariant broken; got = %v, expected = %v", n.size, want)
	}
	if n.left != nil && n.left.priority < n.priority {
		t.Errorf("heap invariant broken on left child")
	}
	if n.right != nil && n.right.priority < n.priority {
		t.Errorf("heap invariant broken on right child")
	}

	checkInvariants(t, n.left)
	checkInvariants(t, n.right)
}

func TestSize(t *testing.T) {
	var empty *Node[rune]
	if got := Size(empty); got != 0 {
		t.Errorf("got != want; got = %v, expected = %v", got, 0)
	}

	src := NewSource(1)
	for _, n := range []int{1, 2, 7, 100} {
		values := make([]int, n)
		for i := range values {
			values[i] = i
		}

		root := FromSlice(values, src)
		if got := Size(root); got != n {
			t.Errorf("Size(%d elements) = %v", n, got)
		}
		if got := len(PrintTo(root, nil)); got != Size(root) {
			t.Errorf("traversal length %v != size %v", got, Size(root))
		}
		checkInvariants(t, root)
	}
}

func TestSplitMergeRoundTrip(t *testing.T) {
	src := NewSource(7)
	text := []rune("the quick brown fox")
	root := FromSlice(text, src)

	for k := 0; k <= len(text); k++ {
		l, r := Split(root, k)

		if got := Size(l); got != k {
			t.Errorf("(k=%d) left size = %v", k, got)
		}
		if got, want := string(PrintTo(l, nil)), string(text[:k]); got != want {
			t.Errorf("(k=%d) left got != want; diff = %v", k, cmp.Diff(got, want))
		}
		if got, want := string(PrintTo(r, nil)), string(text[k:]); got != want {
			t.Errorf("(k=%d) right got != want; diff = %v", k, cmp.Diff(got, want))
		}

		merged := Merge(l, r)
		if got, want := string(PrintTo(merged, nil)), string(text); got != want {
			t.Errorf("(k=%d) round trip got != want; diff = %v", k, cmp.Diff(got, want))
		}
		checkInvariants(t, l)
		checkInvariants(t, r)
		checkInvariants(t, merged)
	}
}

func TestSplitBoundaries(t *testing.T) {
	src := NewSource(3)
	root := FromSlice([]rune("abc"), src)

	l, r := Split(root, 0)
	if l != nil || r != root {
		t.Errorf("Split(root, 0) should return (nil, root)")
	}

	l, r = Split(root, 3)
	if l != root || r != nil {
		t.Errorf("Split(root, size) should return (root, nil)")
	}

	l, r = Split[rune](nil, 0)
	if l != nil || r != nil {
		t.Errorf("Split(nil, 0) should return (nil, nil)")
	}
}

func TestSplitOutOfRangePanics(t *testing.T) {
	src := NewSource(3)
	root := FromSlice([]rune("abc"), src)

	for _, k := range []int{-1, 4} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Split(root, %d) did not panic", k)
				}
			}()
			Split(root, k)
		}()
	}
}

func TestMergeEmpty(t *testing.T) {
	src := NewSource(5)
	root := FromSlice([]rune("xy"), src)

	if got := Merge(nil, root); got != root {
		t.Errorf("Merge(nil, t) should return t")
	}
	if got := Merge(root, nil); got != root {
		t.Errorf("Merge(t, nil) should return t")
	}
	if got := Merge[rune](nil, nil); got != nil {
		t.Errorf("Merge(nil, nil) should return nil")
	}
}

func TestPersistence(t *testing.T) {
	src := NewSource(11)
	original := FromSlice([]rune("hello"), src)

	l, r := Split(original, 2)
	edited := Merge(l, Merge(Leaf('y', src), r))

	if got, want := string(PrintTo(edited, nil)), "heyllo"; got != want {
		t.Errorf("got != want; got = %v, expected = %v", got, want)
	}
	if got, want := string(PrintTo(original, nil)), "hello"; got != want {
		t.Errorf("original was modified; got = %v, expected = %v", got, want)
	}
	checkInvariants(t, original)
	checkInvariants(t, edited)
}

func TestSplitSharesUntouchedSubtrees(t *testing.T) {
	src := NewSource(13)
	values := make([]int, 64)
	for i := range values {
		values[i] = i
	}
	root := FromSlice(values, src)

	// Splitting at the right edge of the left subtree leaves it untouched.
	k := Size(root.left)
	l, r := Split(root, k)
	if l != root.left {
		t.Errorf("left subtree should be shared, not copied")
	}
	if r.right != root.right {
		t.Errorf("right subtree should be shared, not copied")
	}
}

func TestAt(t *testing.T) {
	src := NewSource(17)
	text := []rune("persistent")
	root := FromSlice(text, src)

	for i, want := range text {
		if got := At(root, i); got != want {
			t.Errorf("At(%d) = %q, want %q", i, got, want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Errorf("At out of range did not panic")
		}
	}()
	At(root, len(text))
}

func TestWalk(t *testing.T) {
	src := NewSource(19)
	root := FromSlice([]rune("abcdef"), src)

	var got []rune
	done := Walk(root, func(r rune) bool {
		got = append(got, r)
		return r != 'c'
	})

	if done {
		t.Errorf("walk should have stopped early")
	}
	if !cmp.Equal(got, []rune("abc")) {
		t.Errorf("got != want; diff = %v", cmp.Diff(got, []rune("abc")))
	}

	if !Walk(root, func(rune) bool { return true }) {
		t.Errorf("full walk should report completion")
	}
}

func TestPrintToAppends(t *testing.T) {
	src := NewSource(23)
	root := FromSlice([]rune("cd"), src)

	got := string(PrintTo(root, []rune("ab")))
	if got != "abcd" {
		t.Errorf("got != want; got = %v, expected = %v", got, "abcd")
	}

	// Traversal is restartable.
	if again := string(PrintTo(root, nil)); again != "cd" {
		t.Errorf("got != want; got = %v, expected = %v", again, "cd")
	}
}

// TestSequentialInsertDepth appends at the end over and over, which is the
// worst case for an unbalanced position-keyed tree, and checks that the depth
// stays logarithmic for every seed.
func TestSequentialInsertDepth(t *testing.T) {
	const n = 4096
	limit := int(4 * math.Log2(n))

	for seed := int64(1); seed <= 20; seed++ {
		src := NewSource(seed)
		var root *Node[int]
		for i := 0; i < n; i++ {
			l, r := Split(root, Size(root))
			root = Merge(l, Merge(Leaf(i, src), r))
		}

		if got := Size(root); got != n {
			t.Fatalf("(seed %d) size = %v, want %v", seed, got, n)
		}
		if d := Depth(root); d > limit {
			t.Errorf("(seed %d) depth %d exceeds %d", seed, d, limit)
		}
	}
}

func TestSourceDeterministic(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 10; i++ {
		if a.Priority() != b.Priority() {
			t.Fatalf("sources with equal seeds diverged at draw %d", i)
		}
	}
	if DefaultSource() == nil {
		t.Errorf("default source should not be nil")
	}
}
