package Trees

import (
	"golang.org/x/exp/constraints"
)

// info holds the links of a node in the arena. Every link is a handle into
// base.ifs, and 0 is the nil handle.
// The zero value is a detached node.
type info[S constraints.Unsigned] struct {
	l, r, p S
}

type base[S constraints.Unsigned] struct {
	root, free S         // free is the beginning of the linked list that contains all the free handles, in which case we use l as next.
	ifs        []info[S] // ifs[0] is the nil loop-back and is never written. all handles are based on ifs.
}

// addFree handle a once.
func (u *base[S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree handle once. Returns 0 when there's no free handle(when u.free==0).
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

func (u *base[S]) leaf(i S) bool {
	return u.ifs[i].l == 0 && u.ifs[i].r == 0
}

// leftmost node of the subtree rooting at i.
func (u *base[S]) leftmost(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

// firstLeaf of the subtree rooting at i: go left when possible, otherwise right.
func (u *base[S]) firstLeaf(i S) S {
	for {
		if n := u.ifs[i]; n.l != 0 {
			i = n.l
		} else if n.r != 0 {
			i = n.r
		} else {
			return i
		}
	}
}

// lastLeaf is the mirror of firstLeaf.
func (u *base[S]) lastLeaf(i S) S {
	for {
		if n := u.ifs[i]; n.r != 0 {
			i = n.r
		} else if n.l != 0 {
			i = n.l
		} else {
			return i
		}
	}
}

// transplant replaces the subtree rooting at a with the subtree rooting at b
// in a's parent slot, or as the root. b may be 0. a's own links are left untouched.
// Time: O(1)
func (u *base[S]) transplant(a, b S) {
	p := u.ifs[a].p
	if p == 0 {
		u.root = b
	} else if u.ifs[p].l == a {
		u.ifs[p].l = b
	} else {
		u.ifs[p].r = b
	}
	if b != 0 {
		u.ifs[b].p = p
	}
}

// unlink node d from the tree, relinking its subtrees. When d has 2 children
// its in-order successor is moved into d's place; the successor keeps its
// handle. d's links are left untouched so the caller can still read them.
// Returns the name of the case taken.
func (u *base[S]) unlink(d S) string {
	n := u.ifs[d]
	switch {
	case n.l == 0 && n.r == 0:
		u.transplant(d, 0)
		return "leaf"
	case n.l == 0:
		u.transplant(d, n.r)
		return "right only"
	case n.r == 0:
		u.transplant(d, n.l)
		return "left only"
	}
	s, c := u.leftmost(n.r), "successor is right child"
	if s != n.r {
		u.transplant(s, u.ifs[s].r)
		u.ifs[s].r = n.r
		u.ifs[n.r].p = s
		c = "successor is deeper"
	}
	u.transplant(d, s)
	u.ifs[s].l = n.l
	u.ifs[n.l].p = s
	return c
}

// depth of the subtree rooting at i, counting i as 1. Recursive.
func (u *base[S]) depth(i S) int {
	if i == 0 {
		return 0
	}
	return 1 + max(u.depth(u.ifs[i].l), u.depth(u.ifs[i].r))
}

// inOrder traversal of the tree using st as the stack; st is returned for reuse.
func (u *base[S]) inOrder(f func(S) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(curI) {
			break
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// linked reports whether every parent link agrees with the child links.
func (u *base[S]) linked() bool {
	if u.ifs[0] != (info[S]{}) || (u.root != 0 && u.ifs[u.root].p != 0) {
		return false
	}
	ok, seen := true, 0
	u.inOrder(func(i S) bool {
		n := u.ifs[i]
		seen++ // a cycle would otherwise never end the walk.
		ok = seen < len(u.ifs) && (n.l == 0 || u.ifs[n.l].p == i) && (n.r == 0 || u.ifs[n.r].p == i)
		return ok
	}, nil)
	return ok
}

func (u *base[S]) clear() {
	u.ifs = u.ifs[:1]
	u.root, u.free = 0, 0
}
