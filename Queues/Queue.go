package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item; returns an *EmptyQueueError if there's none.
	Pop() (T, error)
	//Peek the oldest item without removing it; false if the queue is empty.
	Peek() (T, bool)
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
