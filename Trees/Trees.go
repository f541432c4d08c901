package Trees

// Tree represents an ordered collection of unique elements implemented using
// nodes. Receivers that have a bool as a second return value indicate with it
// whether the first return value is defined. Receivers returning an error
// report the reason the operation couldn't produce a result; the collection
// is never modified when an error is returned. If an implementation didn't
// specify anything special, then the implemented receivers follow the
// behaviors defined here. Methods implemented recursively should be noted,
// otherwise functions are implemented iteratively.
// Implementations aren't safe for concurrent use: either access only in a
// single goroutine or restrict access with external synchronization.
type Tree[T any] interface {
	//Add v to the Tree. Returning true if the Tree grew, false if an equal
	//element was already present(in which case the Tree is unchanged).
	Add(v T) bool
	//AddAll adds every value in vs, returning true only if every single one
	//was novel. A duplicate makes the result false but doesn't stop the
	//remaining values from being added.
	AddAll(vs ...T) bool
	//Remove v from the Tree. Returns whether the Tree shrank, along with
	//EmptyTreeError when the Tree has no elements or NotFoundError when no
	//element equals v.
	Remove(v T) (bool, error)
	//Has element v. Note that even though by utilizing the second
	//return value of other methods achieves the same functionality
	//as Has, it is encouraged to use Has for the purposes of checking
	//if some value exists, as Has should be optimized for this purpose
	//in implementations.
	Has(v T) bool
	//HasAll reports whether the Tree contains exactly the elements of vs:
	//false immediately when Size() differs from len(vs), otherwise whether
	//every value is present.
	HasAll(vs ...T) bool
	//Minimum element of the tree. EmptyTreeError when there is none.
	Minimum() (T, error)
	//Maximum element of the tree. EmptyTreeError when there is none.
	Maximum() (T, error)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//InOrder traversal of the tree, calling f on each element in ascending
	//order until f returns false. The tree must not be modified by f or
	//accessed concurrently during the traversal.
	InOrder(f func(T) bool)
	//Sorted returns the elements in ascending order. The returned slice is
	//a snapshot, not a view.
	Sorted() []T
	//IsBalanced verifies the balancing invariant and the cached metadata of
	//every node. This is a diagnostic: no operation of a correct
	//implementation ever relies on it.
	IsBalanced() bool
	//Empty is Size()==0.
	Empty() bool
	//Size of the tree.
	Size() uint
	//Height of the tree: the longest path from the root to a leaf, -1 when
	//empty.
	Height() int
	//Clear releases all elements.
	Clear()
}
