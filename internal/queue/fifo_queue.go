package queue

type FIFOQueue[T any] interface {
	Enqueue(T)
	Dequeue() (T, bool)
	Front() (T, bool)
	Rear() (T, bool)
	Size() int
	IsEmpty() bool
	Clear()
}
