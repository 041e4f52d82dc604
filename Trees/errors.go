package Trees

import "fmt"

// EmptyTreeError is returned by operations that need at least one node.
// Op names the operation that failed.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	if e.Op == "" {
		return "Tree is empty."
	}
	return "Tree is empty: cannot " + e.Op + "."
}

// Is matches any *EmptyTreeError regardless of Op.
func (e *EmptyTreeError) Is(target error) bool {
	_, ok := target.(*EmptyTreeError)
	return ok
}

// SingleLeafError is returned when a leaf-to-leaf path is asked for but the
// tree has only one leaf.
type SingleLeafError struct {
}

func (e *SingleLeafError) Error() string {
	return "Tree has a single leaf: no leaf-to-leaf path."
}

func (e *SingleLeafError) Is(target error) bool {
	_, ok := target.(*SingleLeafError)
	return ok
}

// CapacityError is returned when an operation would need more nodes than the
// handle type of the tree can address. Max is that number of nodes.
type CapacityError struct {
	Op  string
	Max uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Tree is limited to %d nodes: cannot %s.", e.Max, e.Op)
}

func (e *CapacityError) Is(target error) bool {
	_, ok := target.(*CapacityError)
	return ok
}

var (
	ErrEmptyTree  error = &EmptyTreeError{}
	ErrSingleLeaf error = &SingleLeafError{}
	ErrCapacity   error = &CapacityError{}
)
