package Trees

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// leafPair is a path between leaves a and b through their lowest common ancestor p.
type leafPair[S any] struct {
	a, p, b S
	n       int // edges
}

// MinMaxLeafPaths [Tree.MinMaxLeafPaths]. A leaf is a node without children,
// so a tree shaped like a chain has a single leaf, same as a single node.
// Every pair of leaves is looked at once, at its lowest common ancestor:
// leaves are taken from left to right, and each leaf a climbs to its
// ancestors; at an ancestor p reached from its left subtree, a is paired
// with the leaves of p's right subtree, left to right. The first pair found
// wins ties. Only the 2 winning pairs are turned into paths.
// Time: O(L^2+L*D^2) where L is the number of leaves; Space: O(n)
func (u *BSTree[T, S]) MinMaxLeafPaths() ([]T, []T, error) {
	if u.root == 0 {
		return nil, nil, &EmptyTreeError{"find leaf paths"}
	}
	lv := make([]int, len(u.ifs))  // level of each node
	pos := make([]int, len(u.ifs)) // index of each leaf in leaves
	var leaves []S
	// pre-order walk, so that leaves come from left to right.
	lv[u.root] = 1
	for st := []S{u.root}; len(st) > 0; {
		i := st[len(st)-1]
		st = st[:len(st)-1]
		n := u.ifs[i]
		if n.l == 0 && n.r == 0 {
			pos[i] = len(leaves)
			leaves = append(leaves, i)
			continue
		}
		if n.r != 0 {
			lv[n.r] = lv[i] + 1
			st = append(st, n.r)
		}
		if n.l != 0 {
			lv[n.l] = lv[i] + 1
			st = append(st, n.l)
		}
	}
	if len(leaves) < 2 {
		return nil, nil, &SingleLeafError{}
	}

	lo, hi := leafPair[S]{n: -1}, leafPair[S]{n: -1}
	for _, a := range leaves {
		for c, p := a, u.ifs[a].p; p != 0; c, p = p, u.ifs[p].p {
			r := u.ifs[p].r
			if u.ifs[p].l != c || r == 0 {
				continue
			}
			// the leaves of a subtree are contiguous in leaves.
			for _, b := range leaves[pos[u.firstLeaf(r)] : pos[u.lastLeaf(r)]+1] {
				n := lv[a] + lv[b] - 2*lv[p]
				if lo.n < 0 || n < lo.n {
					lo = leafPair[S]{a, p, b, n}
				}
				if n > hi.n {
					hi = leafPair[S]{a, p, b, n}
				}
			}
		}
	}
	short, long := u.path(lo), u.path(hi)
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"op": "leaf paths", "leaves": len(leaves), "min": short, "max": long,
		}).Debug("leaf paths found")
	}
	return short, long, nil
}

// path lists the keys from lp.a up to lp.p and down to lp.b.
func (u *BSTree[T, S]) path(lp leafPair[S]) []T {
	ks := make([]T, 0, lp.n+1)
	for i := lp.a; i != lp.p; i = u.ifs[i].p {
		ks = append(ks, *u.getV(i))
	}
	ks = append(ks, *u.getV(lp.p))
	m := len(ks)
	for i := lp.b; i != lp.p; i = u.ifs[i].p {
		ks = append(ks, *u.getV(i))
	}
	slices.Reverse(ks[m:])
	return ks
}
