package Trees

import (
	"math/bits"

	"github.com/sirupsen/logrus"
)

// Filler is the value of the leaves added by Complete.
const Filler = 1

// Complete [Tree.Complete] using Filler as the value of the new leaves.
func (u *BSTree[T, S]) Complete() error {
	return u.CompleteWith(Filler)
}

// CompleteWith fills, at every node above the last level, the missing left
// child and then the missing right child with a new leaf holding v. Depth()
// doesn't change and every row of Levels() ends up without nil slots. The new
// leaves are placed by position, not by value, so the tree can be Corrupt
// afterwards. A tree that is already full is left as is. A tree too deep for
// its 2^D-1 nodes to get handles of type S gets a *CapacityError and is left
// as is. Recursive.
// Time: O(2^D)
func (u *BSTree[T, S]) CompleteWith(v T) error {
	if u.root == 0 {
		return &EmptyTreeError{"complete"}
	}
	d, added := u.Depth(), 0
	if b := bits.Len64(uint64(^S(0))); d > b {
		return &CapacityError{Op: "complete", Max: uint64(^S(0))}
	}
	u.fill(u.root, 1, d, v, &added)
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"op": "complete", "depth": d, "added": added, "filler": v,
		}).Debug("tree completed")
	}
	return nil
}

// fill the node curI at level lv of a tree of depth d.
func (u *BSTree[T, S]) fill(curI S, lv, d int, v T, added *int) {
	if lv >= d {
		return
	}
	if u.ifs[curI].l == 0 {
		c := u.alloc(v, curI)
		u.ifs[curI].l = c
		*added++
	}
	if u.ifs[curI].r == 0 {
		c := u.alloc(v, curI)
		u.ifs[curI].r = c
		*added++
	}
	u.fill(u.ifs[curI].l, lv+1, d, v, added)
	u.fill(u.ifs[curI].r, lv+1, d, v, added)
}
