package Trees

// Tree represents an ordered binary tree implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be undefined.
// Receivers returning an error return an *EmptyTreeError when the tree has
// no node to work on, which is to be distinguished from a false result
// meaning that the value was not found.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false otherwise.
	Insert(v T) bool
	//Delete v from the Tree. Returning true if a node was removed, false if v
	//isn't in the Tree.
	Delete(v T) (bool, error)
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() uint
	//Depth of the tree; an empty tree has depth 0 and the root is at level 1.
	Depth() int
	//Levels returns Depth() rows, row i having 2^i slots laid out as in a
	//complete binary tree. A nil slot means there's no node there.
	Levels() [][]*T
	//InOrder calls f on the elements in ascending order until f returns false.
	//The tree must not be modified during the iteration.
	InOrder(f func(T) bool)
	//MinMaxLeafPaths returns the shortest and the longest paths between 2 leaves,
	//each going from one leaf up to the lowest common ancestor and down to the other.
	MinMaxLeafPaths() (min, max []T, e error)
	//Complete fills every missing child above the last level with a filler
	//leaf, without changing Depth().
	Complete() error
	//Corrupt returns whether the tree has corrupt structures, when the order
	//of the values or the links between nodes are broken.
	Corrupt() bool
}
