package Sets

// Set of unique elements. Put and Remove report whether the set changed.
// Take removes and returns some element; which one is up to the
// implementation, as is the order Range visits elements in.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() E
	Range(func(E) bool)
}
