package Trees

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-bst/Queues"
)

// Depth [Tree.Depth]. Recursive; recomputed at every call.
// Time: O(n); Space: O(D)
func (u *BSTree[T, S]) Depth() int {
	return u.depth(u.root)
}

// Levels [Tree.Levels]. Returns nil for an empty tree. The pointers are only
// valid until the next call that adds nodes.
// Time: O(2^D); Space: O(2^D)
func (u *BSTree[T, S]) Levels() [][]*T {
	d := u.Depth()
	if d == 0 {
		return nil
	}
	rows := make([][]*T, d)
	row := []S{u.root}
	for i := range rows {
		rows[i] = make([]*T, len(row))
		for j, k := range row {
			if k != 0 {
				rows[i][j] = u.getV(k)
			}
		}
		if i+1 < d {
			next := make([]S, len(row)<<1)
			for j, k := range row {
				if k != 0 {
					next[j<<1], next[j<<1|1] = u.ifs[k].l, u.ifs[k].r
				}
			}
			row = next
		}
	}
	return rows
}

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(D)
func (u *BSTree[T, S]) InOrder(f func(T) bool) {
	u.inOrder(func(i S) bool {
		return f(*u.getV(i))
	}, nil)
}

// Keys returns all the elements in ascending order.
func (u *BSTree[T, S]) Keys() []T {
	ks := make([]T, 0, u.sz)
	u.InOrder(func(v T) bool {
		ks = append(ks, v)
		return true
	})
	return ks
}

// String is the in-order dump of the tree, elements separated by spaces.
func (u *BSTree[T, S]) String() string {
	var sb strings.Builder
	u.InOrder(func(v T) bool {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
		return true
	})
	return sb.String()
}

type levelItem[S any] struct {
	i     S
	level int
}

// LevelOrder calls f on the elements level by level, left to right, with the
// level of the element (the root is at level 1), until f returns false.
// Time: O(n); Space: O(width of the tree)
func (u *BSTree[T, S]) LevelOrder(f func(v T, level int) bool) {
	u.levelOrder(func(i S, level int) bool {
		return f(*u.getV(i), level)
	})
}

func (u *BSTree[T, S]) levelOrder(f func(i S, level int) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.New[levelItem[S]](4)
	q.Push(levelItem[S]{u.root, 1})
	for !q.Empty() {
		it, _ := q.Pop()
		if !f(it.i, it.level) {
			return
		}
		n := u.ifs[it.i]
		if n.l != 0 {
			q.Push(levelItem[S]{n.l, it.level + 1})
		}
		if n.r != 0 {
			q.Push(levelItem[S]{n.r, it.level + 1})
		}
	}
}

// Corrupt [Tree.Corrupt]. It checks that the in-order sequence never
// decreases, that parent links agree with child links, and that Size matches.
// Time: O(n)
func (u *BSTree[T, S]) Corrupt() bool {
	if !u.linked() {
		return true
	}
	var (
		prev  T
		count S
		ok    = true
	)
	u.inOrder(func(i S) bool {
		v := *u.getV(i)
		ok = count == 0 || prev <= v
		prev = v
		count++
		return ok
	}, nil)
	return !ok || count != u.sz
}
