package Trees

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func full(rows [][]*int) bool {
	for _, row := range rows {
		for _, c := range row {
			if c == nil {
				return false
			}
		}
	}
	return true
}

func TestBSTree_Complete(t *testing.T) {
	for round := 0; round < 100; round++ {
		tree := New[int, uint16](0)
		for n, m := 0, 1+rg.Intn(12); n < m; n++ {
			tree.Insert(rg.Intn(100))
		}
		d, sz := tree.Depth(), tree.Size()
		if e := tree.Complete(); e != nil {
			t.Fatal(e)
		}
		if tree.Depth() != d {
			t.Errorf("round %d: depth went from %d to %d", round, d, tree.Depth())
		}
		rows := tree.Levels()
		if !full(rows) {
			t.Errorf("round %d: tree isn't full: %s", round, shape(tree))
		}
		if want := uint(1)<<d - 1; tree.Size() != want || tree.Size() < sz {
			t.Errorf("round %d: size is %d, want %d", round, tree.Size(), want)
		}
		if !tree.linked() {
			t.Errorf("round %d: links are broken", round)
		}
	}
}

func TestBSTree_CompleteCapacity(t *testing.T) {
	// a chain of 8 nodes completes to 255 nodes, all uint8 handles.
	tree := New[int, uint8](0)
	for v := 0; v < 8; v++ {
		tree.Insert(v)
	}
	if e := tree.Complete(); e != nil {
		t.Fatalf("depth 8 failed to complete: %v", e)
	}
	if tree.Size() != 255 || tree.Depth() != 8 || !tree.linked() {
		t.Errorf("size %d, depth %d after completion", tree.Size(), tree.Depth())
	}
	// one more level needs 511 nodes.
	tree = New[int, uint8](0)
	for v := 0; v < 9; v++ {
		tree.Insert(v)
	}
	if e := tree.Complete(); !errors.Is(e, ErrCapacity) {
		t.Errorf("depth 9 returned %v", e)
	}
	if tree.Size() != 9 {
		t.Errorf("size changed to %d", tree.Size())
	}
	mustNotCorrupt(t, tree)
}

func TestBSTree_CompleteNoop(t *testing.T) {
	tree := New[int, uint8](0)
	if e := tree.Complete(); !errors.Is(e, ErrEmptyTree) {
		t.Errorf("empty tree returned %v", e)
	}
	tree.Insert(5)
	if e := tree.Complete(); e != nil || tree.Size() != 1 || shape(tree) != "5" {
		t.Errorf("single node became %q", shape(tree))
	}
	for _, v := range []int{3, 8} {
		tree.Insert(v)
	}
	before := shape(tree)
	if e := tree.Complete(); e != nil || shape(tree) != before {
		t.Errorf("full tree became %q", shape(tree))
	}
}

func TestBSTree_CompleteWith(t *testing.T) {
	tree := From[int, uint8]([]int{5, 3, 4, 8})
	if e := tree.CompleteWith(-9); e != nil {
		t.Fatal(e)
	}
	if s := shape(tree); s != "5|3 8|-9 4 -9 -9" {
		t.Errorf("shape is %q", s)
	}
	if !tree.Corrupt() {
		t.Errorf("filler leaves out of order weren't detected")
	}
}

func TestBSTree_WriteDot(t *testing.T) {
	tree := From[int, uint8]([]int{10, 5, 15, 12})
	var buf bytes.Buffer
	if e := tree.WriteDot(&buf); e != nil {
		t.Fatal(e)
	}
	s := buf.String()
	if !strings.HasPrefix(s, "strict digraph {\n") || !strings.HasSuffix(s, "}\n") {
		t.Errorf("not a digraph: %q", s)
	}
	for _, want := range []string{`[label="10"]`, `[label="12"]`, `"1" -> "2";`, `"1" -> "3";`, `"3" -> "4";`, `"3r" [label=""`} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %s in %q", want, s)
		}
	}
	if n := strings.Count(s, "->"); n != 4 {
		t.Errorf("%d edges, want 4", n)
	}
}
