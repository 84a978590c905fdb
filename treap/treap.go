package treap

import "fmt"

// Node is an immutable treap node. A nil *Node is the empty tree.
type Node[T any] struct {
	value    T
	size     int
	priority uint64
	left     *Node[T]
	right    *Node[T]
}

// Leaf returns a single-element tree holding value, with a priority drawn from src.
func Leaf[T any](value T, src Source) *Node[T] {
	return &Node[T]{value: value, size: 1, priority: src.Priority()}
}

// newNode builds a node over the given children. The size is derived, never passed in.
func newNode[T any](value T, priority uint64, left, right *Node[T]) *Node[T] {
	return &Node[T]{
		value:    value,
		size:     Size(left) + 1 + Size(right),
		priority: priority,
		left:     left,
		right:    right,
	}
}

// withLeft returns a copy of n with its left child replaced.
func (n *Node[T]) withLeft(left *Node[T]) *Node[T] {
	return newNode(n.value, n.priority, left, n.right)
}

// withRight returns a copy of n with its right child replaced.
func (n *Node[T]) withRight(right *Node[T]) *Node[T] {
	return newNode(n.value, n.priority, n.left, right)
}

// Value returns the payload stored at n.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left subtree, possibly nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right subtree, possibly nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// Priority returns the balancing priority of n.
func (n *Node[T]) Priority() uint64 {
	return n.priority
}

// Size returns the number of elements in the tree rooted at n.
func Size[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// Split divides n into its first k elements and the rest.
// It panics unless 0 <= k <= Size(n); an out-of-range rank is a caller bug.
func Split[T any](n *Node[T], k int) (*Node[T], *Node[T]) {
	if k < 0 || k > Size(n) {
		panic(fmt.Sprintf("treap: split rank %d out of range [0, %d]", k, Size(n)))
	}
	return split(n, k)
}

func split[T any](n *Node[T], k int) (*Node[T], *Node[T]) {
	if k == 0 {
		return nil, n
	}
	if k == Size(n) {
		return n, nil
	}

	if leftSize := Size(n.left); leftSize >= k {
		lhs, rhs := split(n.left, k)
		return lhs, n.withLeft(rhs)
	}

	lhs, rhs := split(n.right, k-Size(n.left)-1)
	return n.withRight(lhs), rhs
}

// Merge concatenates left and right. The root with the smaller priority wins,
// so the result stays heap ordered when both inputs are.
func Merge[T any](left, right *Node[T]) *Node[T] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}

	if left.priority < right.priority {
		return left.withRight(Merge(left.right, right))
	}
	return right.withLeft(Merge(left, right.left))
}

// PrintTo appends the in-order sequence of n to out and returns the extended slice.
func PrintTo[T any](n *Node[T], out []T) []T {
	if n == nil {
		return out
	}

	out = PrintTo(n.left, out)
	out = append(out, n.value)
	return PrintTo(n.right, out)
}

// Walk calls fn for each value in order until fn returns false.
// It reports whether the walk reached the end.
func Walk[T any](n *Node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}
	if !Walk(n.left, fn) {
		return false
	}
	if !fn(n.value) {
		return false
	}
	return Walk(n.right, fn)
}

// At returns the element of rank i. It panics if i is out of range.
func At[T any](n *Node[T], i int) T {
	if i < 0 || i >= Size(n) {
		panic(fmt.Sprintf("treap: index %d out of range [0, %d)", i, Size(n)))
	}

	for {
		leftSize := Size(n.left)
		switch {
		case i < leftSize:
			n = n.left
		case i == leftSize:
			return n.value
		default:
			i -= leftSize + 1
			n = n.right
		}
	}
}

// FromSlice builds a tree holding values in order.
func FromSlice[T any](values []T, src Source) *Node[T] {
	var root *Node[T]
	for _, v := range values {
		root = Merge(root, Leaf(v, src))
	}
	return root
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func Depth[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}

	l, r := Depth(n.left), Depth(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}
