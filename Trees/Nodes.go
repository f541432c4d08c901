package Trees

import "golang.org/x/exp/constraints"

// A node in the AVLTree
// The zero value is meaningless.
type node[T any, S constraints.Unsigned] struct {
	v    T
	l, r nodePtr[T, S]
	sz   S
	h    int8
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in AVLTree. The value of this node has
// both node.l, node.r = itself, sz=0, and h=-1. v is the zero value of T.
type nodePtr[T any, S constraints.Unsigned] *node[T, S]

// update recomputes the cached height and subtree size of n from its
// children. Both children must already hold correct metadata.
func (n *node[T, S]) update() {
	n.h = max(n.l.h, n.r.h) + 1
	n.sz = n.l.sz + n.r.sz + 1
}

// rotateLeft performs a left rotation on nodePtr n. n is passed by reference in order
// to modify its content. The heights and sizes of the two pivoting nodes are
// recomputed child first: the new root takes over the old root's pre-rotation
// size while the old root's metadata is rebuilt from its shrunk subtrees.
// Time: O(1); Space: O(1)
func rotateLeft[T any, S constraints.Unsigned](n *nodePtr[T, S]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	rc.sz = r.sz
	r.sz = r.l.sz + r.r.sz + 1
	r.h = max(r.l.h, r.r.h) + 1
	rc.h = max(rc.l.h, rc.r.h) + 1
	*n = rc
}

// rotateRight performs a right rotation on nodePtr n. n is passed by reference in order
// to modify its content. Mirror of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[T any, S constraints.Unsigned](n *nodePtr[T, S]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	lc.sz = r.sz
	r.sz = r.l.sz + r.r.sz + 1
	r.h = max(r.l.h, r.r.h) + 1
	lc.h = max(lc.l.h, lc.r.h) + 1
	*n = lc
}

// balance restores the height invariant at *n after a single insertion or
// removal below it, assuming both subtrees already satisfy it and the cached
// metadata of *n is current. The balance factor height(l)-height(r) selects
// among the four rotation cases: a plain right (resp. left) rotation when the
// taller subtree is outer-heavy, preceded by a rotation of the child when it
// is inner-heavy.
// Time: O(1); Space: O(1)
func balance[T any, S constraints.Unsigned](n *nodePtr[T, S]) {
	if cur := *n; cur.l.h-cur.r.h > 1 {
		if lc := cur.l; lc.l.h < lc.r.h { // left child right-heavy
			rotateLeft(&cur.l)
		}
		rotateRight(n)
	} else if cur.l.h-cur.r.h < -1 {
		if rc := cur.r; rc.r.h < rc.l.h { // right child left-heavy
			rotateRight(&cur.r)
		}
		rotateLeft(n)
	}
}

// balanced reports whether the subtree rooting at cur keeps heights of
// sibling subtrees within 1 of each other at every node and caches correct
// metadata everywhere, returning the recomputed height and size of cur.
// Recursive. Time: O(n)
func balanced[T any, S constraints.Unsigned](cur, nilPtr nodePtr[T, S]) (int8, S, bool) {
	if cur == nilPtr {
		return -1, 0, true
	}
	lh, lsz, lok := balanced(cur.l, nilPtr)
	rh, rsz, rok := balanced(cur.r, nilPtr)
	h, sz := max(lh, rh)+1, lsz+rsz+1
	return h, sz, lok && rok && lh-rh <= 1 && rh-lh <= 1 && cur.h == h && cur.sz == sz
}
