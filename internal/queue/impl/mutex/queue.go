package mutex

import (
	"sync"

	"github.com/Philanthropists/linkedcontainers/internal/queue"
	"github.com/Philanthropists/linkedcontainers/internal/queue/impl/linked"
)

type mutexFifoQueue[T any] struct {
	Inner queue.FIFOQueue[T]
	Mutex *sync.Mutex
}

// CreateQueue guards inner with a mutex. A nil inner gets a new linked queue.
func CreateQueue[T any](inner queue.FIFOQueue[T]) *mutexFifoQueue[T] {
	if inner == nil {
		inner = linked.New[T]()
	}

	return &mutexFifoQueue[T]{
		Inner: inner,
		Mutex: &sync.Mutex{},
	}
}

func (q *mutexFifoQueue[T]) Enqueue(e T) {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	q.Inner.Enqueue(e)
}

func (q *mutexFifoQueue[T]) Dequeue() (T, bool) {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Inner.Dequeue()
}

func (q *mutexFifoQueue[T]) Front() (T, bool) {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Inner.Front()
}

func (q *mutexFifoQueue[T]) Rear() (T, bool) {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Inner.Rear()
}

func (q *mutexFifoQueue[T]) Size() int {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Inner.Size()
}

func (q *mutexFifoQueue[T]) IsEmpty() bool {
	return q.Size() == 0
}

func (q *mutexFifoQueue[T]) Clear() {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	q.Inner.Clear()
}
