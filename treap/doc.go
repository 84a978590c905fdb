// Package treap provides a persistent treap keyed implicitly by rank.
//
// A node's position in the sequence is its rank in the in-order traversal;
// no key is stored. Every node also carries a random priority and the tree is
// a min-heap on priorities, which keeps the expected depth at O(log n) no
// matter in which order elements are inserted.
//
// Nodes are never modified after construction. Split and Merge copy only the
// nodes on the path they walk and share every other subtree with their
// inputs, so an old root stays a valid snapshot of the sequence it described:
//
//	src := treap.NewSource(1)
//	t := treap.FromSlice([]rune("hello"), src)
//	l, r := treap.Split(t, 2)                          // "he", "llo"
//	t2 := treap.Merge(l, treap.Merge(treap.Leaf('y', src), r))
//	string(treap.PrintTo(t2, nil))                     // "heyllo"
//	string(treap.PrintTo(t, nil))                      // still "hello"
package treap
