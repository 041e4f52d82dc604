package Trees

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// Log is used by the structural operations of every tree in this package.
// It only emits at debug level, so the default level keeps trees silent.
var Log = logrus.New()

// BSTree is a binary search tree that is never rebalanced. Equal values are
// accepted and go to the right, so Has and Get only see the topmost copy.
// T is the type of the keys, S is the type of the handles used to link the
// nodes; S must be wide enough to count every node ever alive at once.
// Nodes live in an arena: links are handles into ifs, the value of handle i is
// vs[i-1], and the handles of deleted nodes are reused by later inserts.
// The zero value isn't usable, create trees with New or From.
type BSTree[T constraints.Integer, S constraints.Unsigned] struct {
	base[S]
	vs []T // vs[i] corresponds to ifs[i+1].
	sz S
}

// New returns an empty tree with room for hint nodes.
func New[T constraints.Integer, S constraints.Unsigned](hint S) *BSTree[T, S] {
	return &BSTree[T, S]{base: base[S]{ifs: make([]info[S], 1, int(hint)+1)}, vs: make([]T, 0, hint)}
}

// From inserts vs in the given order into a new tree.
// Time: O(n*D)
func From[T constraints.Integer, S constraints.Unsigned](vs []T) *BSTree[T, S] {
	u := New[T](S(len(vs)))
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

func (u *BSTree[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// full reports whether every handle of S is taken by a node.
func (u *BSTree[T, S]) full() bool {
	return u.sz == ^S(0)
}

// alloc a detached node holding v under parent p. Free handles are used
// before the arena grows, so the arena only grows when it has no free handle
// and the new handle is sz+1. Callers check full first.
func (u *BSTree[T, S]) alloc(v T, p S) (i S) {
	if i = u.popFree(); i == 0 {
		if i = S(len(u.ifs)); i == 0 {
			panic("Trees: handle type too narrow for the arena")
		}
		u.ifs = append(u.ifs, info[S]{p: p})
		u.vs = append(u.vs, v)
	} else {
		u.ifs[i] = info[S]{p: p}
		u.vs[i-1] = v
	}
	u.sz++
	return
}

func (u *BSTree[T, S]) release(i S) {
	u.addFree(i)
	u.vs[i-1] = 0
	u.sz--
}

// find the topmost node holding v. Returns 0 if there's none.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		if cv := *u.getV(curI); v < cv {
			curI = u.ifs[curI].l
		} else if v > cv {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// findParent returns the last node visited when searching for v without stopping
// at equal values, which is the parent a new node holding v gets.
// The tree mustn't be empty.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) findParent(v T) S {
	p := u.root
	for curI := p; curI != 0; {
		p = curI
		if v < *u.getV(curI) {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return p
}

// Insert [Tree.Insert]. Fails only when every handle of S is taken.
// Time: O(D)
func (u *BSTree[T, S]) Insert(v T) bool {
	if u.full() {
		if Log.IsLevelEnabled(logrus.DebugLevel) {
			Log.WithFields(logrus.Fields{"op": "insert", "key": v, "size": u.sz}).Debug("arena full")
		}
		return false
	}
	if u.root == 0 {
		u.root = u.alloc(v, 0)
		return true
	}
	p := u.findParent(v)
	i := u.alloc(v, p)
	if v < *u.getV(p) {
		u.ifs[p].l = i
	} else {
		u.ifs[p].r = i
	}
	return true
}

// Delete [Tree.Delete]. The node that disappears is the one holding v; when it
// has 2 children, its in-order successor is moved into its place with all its
// links redone, so the successor's handle and value stay where they were.
// Time: O(D)
func (u *BSTree[T, S]) Delete(v T) (bool, error) {
	if u.root == 0 {
		return false, &EmptyTreeError{"delete"}
	}
	d := u.find(v)
	if d == 0 {
		return false, nil
	}
	wasRoot := d == u.root
	c := u.unlink(d)
	u.release(d)
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"op": "delete", "key": v, "case": c, "root": wasRoot, "size": u.sz,
		}).Debug("node unlinked")
	}
	return true, nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// Get the pointer to the topmost element that's equal to v in the tree. The
// pointer is only valid until the next call that adds nodes.
func (u *BSTree[T, S]) Get(v T) *T {
	if i := u.find(v); i != 0 {
		return u.getV(i)
	}
	return nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Minimum() (T, bool) {
	if u.root == 0 {
		return 0, false
	}
	return *u.getV(u.leftmost(u.root)), true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Maximum() (T, bool) {
	if u.root == 0 {
		return 0, false
	}
	curI := u.root
	for u.ifs[curI].r != 0 {
		curI = u.ifs[curI].r
	}
	return *u.getV(curI), true
}

// Size [Tree.Size]
func (u *BSTree[T, S]) Size() uint {
	return uint(u.sz)
}

// Empty reports whether the tree has no node.
func (u *BSTree[T, S]) Empty() bool {
	return u.root == 0
}

// Clear the tree. The arena keeps its capacity.
func (u *BSTree[T, S]) Clear() {
	u.clear()
	u.vs = u.vs[:0]
	u.sz = 0
}
