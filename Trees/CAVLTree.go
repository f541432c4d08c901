package Trees

import (
	"golang.org/x/exp/constraints"
)

// CAVLTree is the version of AVLTree for element types without a natural
// ordering, or for orderings other than the natural one. All methods are
// implemented exactly as AVLTree except that every ordering decision invokes
// the three-way comparator injected at construction. The comparator must be
// a consistent total order for the lifetime of the tree.
type CAVLTree[T any, S constraints.Unsigned] struct {
	root   nodePtr[T, S]
	nilPtr nodePtr[T, S]
	cmp    func(T, T) int
}

// New1 is the CAVLTree equivalence of New. cmp(a,b) must be negative when
// a orders before b, positive when after, and 0 when they're equal.
func New1[T any, S constraints.Unsigned](cmp func(T, T) int) *CAVLTree[T, S] {
	z := new(node[T, S])
	z.l, z.r, z.h = z, z, -1
	return &CAVLTree[T, S]{z, z, cmp}
}

// From1 is the CAVLTree equivalence of From. The slice must be sorted in
// ascending order under cmp without duplicates.
func From1[T any, S constraints.Unsigned](sli []T, cmp func(T, T) int, safe bool) *CAVLTree[T, S] {
	z := new(node[T, S])
	z.l, z.r, z.h = z, z, -1
	var build func([]T) nodePtr[T, S]
	if safe {
		build = func(s []T) nodePtr[T, S] {
			if len(s) > 0 {
				mid := len(s) >> 1
				l, r := build(s[0:mid]), build(s[mid+1:])
				if (l == z || cmp(l.v, s[mid]) < 0) && (r == z || cmp(s[mid], r.v) < 0) {
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
	return &CAVLTree[T, S]{build(sli), z, cmp}
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *CAVLTree[T, S]) Size() uint {
	return uint(u.root.sz)
}

// Empty [Tree.Empty]
func (u *CAVLTree[T, S]) Empty() bool {
	return u.root == u.nilPtr
}

// Height [Tree.Height]
func (u *CAVLTree[T, S]) Height() int {
	return int(u.root.h)
}

// Clear [Tree.Clear]
func (u *CAVLTree[T, S]) Clear() {
	u.root = u.nilPtr
}

func (u *CAVLTree[T, S]) insert(curPtr *nodePtr[T, S], v T) {
	cur := *curPtr
	if cur == u.nilPtr {
		*curPtr = &node[T, S]{v, u.nilPtr, u.nilPtr, 1, 0}
		return
	}
	if d := u.cmp(v, cur.v); d < 0 {
		u.insert(&cur.l, v)
	} else if d > 0 {
		u.insert(&cur.r, v)
	} else {
		return
	}
	(*node[T, S])(cur).update()
	balance(curPtr)
}

// Add [Tree.Add]. Recursive.
// Time: O(D)
func (u *CAVLTree[T, S]) Add(v T) bool {
	pre := u.root.sz
	u.insert(&u.root, v)
	return u.root.sz > pre
}

// AddAll [Tree.AddAll]
func (u *CAVLTree[T, S]) AddAll(vs ...T) bool {
	all := true
	for _, v := range vs {
		all = u.Add(v) && all
	}
	return all
}

func (u *CAVLTree[T, S]) removeMin(curPtr *nodePtr[T, S]) nodePtr[T, S] {
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

func (u *CAVLTree[T, S]) remove(curPtr *nodePtr[T, S], v T) error {
	cur := *curPtr
	if cur == u.nilPtr {
		return NotFoundError{v}
	}
	if d := u.cmp(v, cur.v); d < 0 {
		if err := u.remove(&cur.l, v); err != nil {
			return err
		}
	} else if d > 0 {
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
// Time: O(D)
func (u *CAVLTree[T, S]) Remove(v T) (bool, error) {
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
func (u CAVLTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if d := u.cmp(v, cur.v); d < 0 {
			cur = cur.l
		} else if d == 0 {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// HasAll [Tree.HasAll]
func (u CAVLTree[T, S]) HasAll(vs ...T) bool {
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
func (u CAVLTree[T, S]) Minimum() (T, error) {
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
func (u CAVLTree[T, S]) Maximum() (T, error) {
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
func (u CAVLTree[T, S]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.cmp(v, cur.v) <= 0 {
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
func (u CAVLTree[T, S]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// InOrder [Tree.InOrder]. See [AVLTree.InOrder].
func (u CAVLTree[T, S]) InOrder(f func(T) bool) {
	for cur := u.root; cur != u.nilPtr; {
		if cur.l == u.nilPtr {
			if f != nil && !f(cur.v) {
				f = nil
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
func (u CAVLTree[T, S]) Sorted() []T {
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
func (u CAVLTree[T, S]) IsBalanced() bool {
	_, _, ok := balanced(u.root, u.nilPtr)
	return ok
}
