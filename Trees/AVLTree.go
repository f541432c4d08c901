package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations by checking the cached heights of subtrees:
// for every node the heights of its two subtrees differ by at most 1.
// T is the type of values it will hold, S is the type of the variables
// used for storing the sizes of different subtrees.
// This struct holds a root pointer and a corresponding nilPtr used
// as nil described in nodePtr.
// Every node carries its subtree size in addition to its height, so Size
// costs O(1) at an additional memory cost of size(S)*n.
// The height D of the tree is less than 1.44*log2(n+2), so all single
// element operations are O(log n), with at most O(D) rotations per
// mutation, each O(1).
// Note that due to the way uint works in Go, and that the Tree interface
// defines the return value of Size to be uint, S shouldn't be
// any type that will cause overflow when converted to uint. Generally, you
// should let S be a wide upperbound for the size of the tree.
type AVLTree[T constraints.Ordered, S constraints.Unsigned] struct {
	root   nodePtr[T, S] //the root of the tree. It should be nilPtr initially.
	nilPtr nodePtr[T, S] // nilPtr is the pointer used instead of nil here, it follows the description in nodePtr
}

// New returns an AVLTree satisfying the above definitions for nilPtr, root, and types.
// AVLTree shouldn't be created directly using struct literal.
func New[T constraints.Ordered, S constraints.Unsigned]() *AVLTree[T, S] {
	z := new(node[T, S])
	z.l, z.r, z.h = z, z, -1
	return &AVLTree[T, S]{z, z}
}

// From builds an AVLTree from the given sorted slice recursively. This is faster than
// repeatedly calling Add. The given slice must be sorted
// in ascending order and mustn't contain duplicate elements.
// If safe==true, this function will check if the conditions are met and panic with InvalidSliceError
// if the conditions are broken. Otherwise, this function won't perform the check, and it is
// up to the user to ensure the conditions are met(otherwise the tree will be corrupt). It's
// suggested to set safe to false if the conditions are met as this can reduce some redundant
// checks and associated memory costs.
// Time: O(n).
func From[T constraints.Ordered, S constraints.Unsigned](sli []T, safe bool) *AVLTree[T, S] {
	z := new(node[T, S])
	z.l, z.r, z.h = z, z, -1
	var build func([]T) nodePtr[T, S]
	if safe {
		build = func(s []T) nodePtr[T, S] {
			if len(s) > 0 {
				mid := len(s) >> 1
				l, r := build(s[0:mid]), build(s[mid+1:])
				if (l == z || l.v < s[mid]) && (r == z || s[mid] < r.v) {
					return &node[T, S]{s[mid], l, r, S(len(s)), max(l.h, r.h) + 1}
				} else {
					panic(InvalidSliceError{l.v, s[mid], s[mid], r.v})
				}
			} else {
				return z
			}
		}
	} else {
		build = func(s []T) nodePtr[T, S] {
			if len(s) > 0 {
				mid := len(s) >> 1
				l, r := build(s[0:mid]), build(s[mid+1:])
				return &node[T, S]{s[mid], l, r, S(len(s)), max(l.h, r.h) + 1}
			} else {
				return z
			}
		}
	}
	return &AVLTree[T, S]{build(sli), z}
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *AVLTree[T, S]) Size() uint {
	return uint(u.root.sz)
}

// Empty [Tree.Empty]
// Time: O(1); Space: O(1)
func (u *AVLTree[T, S]) Empty() bool {
	return u.root == u.nilPtr
}

// Height [Tree.Height]
// Time: O(1); Space: O(1)
func (u *AVLTree[T, S]) Height() int {
	return int(u.root.h)
}

// Clear [Tree.Clear]. Releases the whole tree at once.
// Time: O(1); Space: O(1)
func (u *AVLTree[T, S]) Clear() {
	u.root = u.nilPtr
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. A fresh leaf is attached where the descent hits
// nilPtr; an equal element ends the descent with no modification. On the way
// back up the cached metadata of every node along the path is recomputed
// from its children and the height invariant restored by balance.
func (u *AVLTree[T, S]) insert(curPtr *nodePtr[T, S], v T) {
	cur := *curPtr
	if cur == u.nilPtr {
		*curPtr = &node[T, S]{v, u.nilPtr, u.nilPtr, 1, 0}
		return
	}
	if v < cur.v {
		u.insert(&cur.l, v)
	} else if cur.v < v {
		u.insert(&cur.r, v)
	} else {
		return
	}
	(*node[T, S])(cur).update()
	balance(curPtr)
}

// Add [Tree.Add]. Recursive.
// It is a wrapper for insert; whether the tree grew is read off the root's
// cached size instead of being threaded through the recursion.
// Time: O(D)
func (u *AVLTree[T, S]) Add(v T) bool {
	pre := u.root.sz
	u.insert(&u.root, v)
	return u.root.sz > pre
}

// AddAll [Tree.AddAll]
// Time: O(len(vs)*D)
func (u *AVLTree[T, S]) AddAll(vs ...T) bool {
	all := true
	for _, v := range vs {
		all = u.Add(v) && all
	}
	return all
}

// removeMin detaches and returns the minimum node of the subtree rooting at
// cur, replacing it with its right child. cur is passed by reference and
// must not be nilPtr. Every ancestor of the detached node has its metadata
// recomputed and is rebalanced on the way back up. The returned node keeps
// stale links; the caller is expected to relink it.
func (u *AVLTree[T, S]) removeMin(curPtr *nodePtr[T, S]) nodePtr[T, S] {
	cur := *curPtr
	if cur.l == u.nilPtr {
		*curPtr = cur.r
		return cur
	}
	m := u.removeMin(&cur.l)
	(*node[T, S])(cur).update()
	balance(curPtr)
	return m
}

// remove the element equal to v from the subtree rooting at cur recursively.
// cur is passed by reference. Returns NotFoundError when the descent hits
// nilPtr, before anything is modified. A node with both children present is
// replaced by its in-order successor, the minimum of its right subtree,
// detached from there by removeMin; the successor's metadata is then
// recomputed from its adopted children rather than carried over.
func (u *AVLTree[T, S]) remove(curPtr *nodePtr[T, S], v T) error {
	cur := *curPtr
	if cur == u.nilPtr {
		return NotFoundError{v}
	}
	if v < cur.v {
		if err := u.remove(&cur.l, v); err != nil {
			return err
		}
	} else if cur.v < v {
		if err := u.remove(&cur.r, v); err != nil {
			return err
		}
	} else {
		if cur.l == u.nilPtr {
			*curPtr = cur.r
			return nil
		} else if cur.r == u.nilPtr {
			*curPtr = cur.l
			return nil
		}
		succ := u.removeMin(&cur.r)
		succ.l, succ.r = cur.l, cur.r
		*curPtr = succ
		cur = succ
	}
	(*node[T, S])(cur).update()
	balance(curPtr)
	return nil
}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove; EmptyTreeError is detected before any descent.
// Time: O(D)
func (u *AVLTree[T, S]) Remove(v T) (bool, error) {
	if u.root == u.nilPtr {
		return false, EmptyTreeError{"Remove"}
	}
	if err := u.remove(&u.root, v); err != nil {
		return false, err
	}
	return true, nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// HasAll [Tree.HasAll]
// Time: O(len(vs)*D); Space: O(1)
func (u AVLTree[T, S]) HasAll(vs ...T) bool {
	if uint(len(vs)) != uint(u.root.sz) {
		return false
	}
	for _, v := range vs {
		if !u.Has(v) {
			return false
		}
	}
	return true
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Minimum() (T, error) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, EmptyTreeError{"Minimum"}
	} else {
		for cur.l != u.nilPtr {
			cur = cur.l
		}
		return cur.v, nil
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Maximum() (T, error) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, EmptyTreeError{"Maximum"}
	} else {
		for cur.r != u.nilPtr {
			cur = cur.r
		}
		return cur.v, nil
	}
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// InOrder [Tree.InOrder]. Morris traversal: the tree is temporarily threaded
// during the walk and always fully restored before returning, even when f
// stops the traversal early.
// Time: amortized O(1) per element; Space: O(1)
func (u AVLTree[T, S]) InOrder(f func(T) bool) {
	for cur := u.root; cur != u.nilPtr; {
		if cur.l == u.nilPtr {
			if f != nil && !f(cur.v) {
				f = nil //keep walking to unthread the remainder.
			}
			cur = cur.r
		} else {
			p := cur.l
			for p.r != u.nilPtr && p.r != cur {
				p = p.r
			}
			if p.r != cur {
				p.r = cur
				cur = cur.l
			} else {
				p.r = u.nilPtr
				if f != nil && !f(cur.v) {
					f = nil
				}
				cur = cur.r
			}
		}
	}
}

// Sorted [Tree.Sorted]
// Recursive. Time: O(n)
func (u AVLTree[T, S]) Sorted() []T {
	s := make([]T, 0, u.root.sz)
	var walk func(nodePtr[T, S])
	walk = func(cur nodePtr[T, S]) {
		if cur != u.nilPtr {
			walk(cur.l)
			s = append(s, cur.v)
			walk(cur.r)
		}
	}
	walk(u.root)
	return s
}

// IsBalanced [Tree.IsBalanced]
// Recursive. Time: O(n)
func (u AVLTree[T, S]) IsBalanced() bool {
	_, _, ok := balanced(u.root, u.nilPtr)
	return ok
}
