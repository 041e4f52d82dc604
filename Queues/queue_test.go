package Queues

import (
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestArrayQueue_Empty(t *testing.T) {
	q := New[int](0)
	if _, e := q.Pop(); e == nil {
		t.Errorf("popped from an empty queue")
	}
	if _, ok := q.Peek(); ok {
		t.Errorf("peeked into an empty queue")
	}
	q.Push(7)
	if v, ok := q.Peek(); !ok || v != 7 {
		t.Errorf("peek is %v, want 7", v)
	}
}

func TestArrayQueue_Fifo(t *testing.T) {
	q := New[int](1)
	var want []int
	for i := 0; i < 10000; i++ {
		if rg.Intn(3) == 0 && len(want) > 0 {
			v, e := q.Pop()
			if e != nil || v != want[0] {
				t.Fatalf("pop %d is %v, want %v", i, v, want[0])
			}
			want = want[1:]
		} else {
			q.Push(i)
			want = append(want, i)
		}
		if q.Size() != uint(len(want)) {
			t.Fatalf("size is %d, want %d", q.Size(), len(want))
		}
		if i%1000 == 0 {
			q.Shrink()
		}
	}
	for _, w := range want {
		if v, _ := q.Pop(); v != w {
			t.Fatalf("pop is %v, want %v", v, w)
		}
	}
	if !q.Empty() {
		t.Errorf("queue isn't empty")
	}
}

func TestArrayQueue_Clear(t *testing.T) {
	q := New[string](2)
	q.Push("a")
	q.Push("b")
	q.Push("c")
	q.Clear()
	if !q.Empty() || q.Size() != 0 {
		t.Errorf("queue isn't empty after Clear")
	}
	q.Push("d")
	if v, _ := q.Pop(); v != "d" {
		t.Errorf("pop is %v, want d", v)
	}
}
