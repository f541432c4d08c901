package Trees

import "fmt"

// EmptyTreeError is returned by operations that need at least one element
// when called on an empty tree. Op is the name of the failing operation.
type EmptyTreeError struct {
	Op string
}

func (e EmptyTreeError) Error() string {
	return e.Op + ": tree is empty"
}

// NotFoundError is returned by Remove when no element compares equal to the
// target. The tree is unchanged when this is returned.
type NotFoundError struct {
	V any
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("element %v not in tree", e.V)
}

// InvalidSliceError is the panic value of the checked From/From1 when the
// given slice isn't sorted in strictly ascending order. The fields hold the
// neighboring values whose comparison exposed the violation.
type InvalidSliceError struct {
	L1, R1, L2, R2 any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice not ascending: (%v, %v), (%v, %v)", e.L1, e.R1, e.L2, e.R2)
}
