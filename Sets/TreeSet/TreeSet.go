package TreeSet

import (
	"github.com/g-m-twostay/go-ordered/Trees"
)

// TreeSet is an ordered Set backed by a comparator AVL tree: elements are
// unique under the comparator, Range visits them in ascending order and Take
// removes the least one. All operations are O(log n) except Range.
// Not safe for concurrent use.
type TreeSet[E any] struct {
	tree *Trees.CAVLTree[E, uint]
}

// New TreeSet ordered by cmp. cmp must be a consistent total order for the
// lifetime of the set; see [Trees.New1].
func New[E any](cmp func(E, E) int) *TreeSet[E] {
	return &TreeSet[E]{Trees.New1[E, uint](cmp)}
}

// From builds a TreeSet from a slice sorted in ascending order under cmp
// without duplicates, in O(n); see [Trees.From1].
func From[E any](sli []E, cmp func(E, E) int, safe bool) *TreeSet[E] {
	return &TreeSet[E]{Trees.From1[E, uint](sli, cmp, safe)}
}

// Put e into the set. Returns false when a comparator-equal element is
// already present, in which case the existing element is kept.
func (u *TreeSet[E]) Put(e E) bool {
	return u.tree.Add(e)
}

func (u *TreeSet[E]) Has(e E) bool {
	return u.tree.Has(e)
}

// Remove e. Returns false when no comparator-equal element is present.
func (u *TreeSet[E]) Remove(e E) bool {
	ok, _ := u.tree.Remove(e)
	return ok
}

func (u *TreeSet[E]) Size() uint {
	return u.tree.Size()
}

func (u *TreeSet[E]) Empty() bool {
	return u.tree.Empty()
}

func (u *TreeSet[E]) Clear() {
	u.tree.Clear()
}

// Min returns the least element; the second return value is false when the
// set is empty.
func (u *TreeSet[E]) Min() (E, bool) {
	m, err := u.tree.Minimum()
	return m, err == nil
}

// Max returns the greatest element; the second return value is false when
// the set is empty.
func (u *TreeSet[E]) Max() (E, bool) {
	m, err := u.tree.Maximum()
	return m, err == nil
}

// Take removes and returns the least element. The return value is undefined
// when the set is empty; check Size first.
func (u *TreeSet[E]) Take() E {
	m, err := u.tree.Minimum()
	if err == nil {
		u.tree.Remove(m)
	}
	return m
}

// Range calls f on every element in ascending order until f returns false.
// The set must not be modified during the traversal.
func (u *TreeSet[E]) Range(f func(E) bool) {
	u.tree.InOrder(f)
}

// Sorted returns the elements in ascending order as a snapshot slice.
func (u *TreeSet[E]) Sorted() []E {
	return u.tree.Sorted()
}
