package linked

import (
	"github.com/Philanthropists/linkedcontainers/internal/arena"
	"github.com/Philanthropists/linkedcontainers/internal/queue"
)

type node[T any] struct {
	value T
	next  arena.Handle
}

// Queue is a FIFO queue over a singly linked chain. Nodes live in an arena
// and link to each other through handles; tail is a cached handle to the
// last node so that Enqueue never walks the chain. It is not safe for
// concurrent use.
type Queue[T any] struct {
	nodes *arena.Arena[node[T]]
	front arena.Handle
	tail  arena.Handle
	size  int
}

func New[T any]() *Queue[T] {
	return &Queue[T]{
		nodes: arena.New[node[T]](),
	}
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

func (q *Queue[T]) Size() int {
	return q.size
}

// Enqueue appends v at the rear of the queue.
func (q *Queue[T]) Enqueue(v T) {
	h := q.nodes.Insert(node[T]{value: v})

	if q.IsEmpty() {
		q.front = h
		q.tail = h
		q.size++
		return
	}

	last, ok := q.nodes.Get(q.tail)
	if !ok {
		panic("queue: tail handle does not resolve")
	}
	last.next = h
	q.tail = h
	q.size++
}

// Dequeue removes and returns the value at the front of the queue.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}

	n, ok := q.nodes.Remove(q.front)
	if !ok {
		panic("queue: front handle does not resolve")
	}

	q.front = n.next
	q.size--
	if q.front.IsNil() {
		q.tail = arena.Nil
	}

	return n.value, true
}

// Front returns the value at the front of the queue without removing it.
func (q *Queue[T]) Front() (T, bool) {
	return q.peek(q.front)
}

// Rear returns the value at the rear of the queue without removing it.
func (q *Queue[T]) Rear() (T, bool) {
	return q.peek(q.tail)
}

func (q *Queue[T]) peek(h arena.Handle) (T, bool) {
	n, ok := q.nodes.Get(h)
	if !ok {
		var zero T
		return zero, false
	}

	return n.value, true
}

// Clear drops every element, releasing the chain one node at a time from
// the front, then frees the node storage.
func (q *Queue[T]) Clear() {
	for h := q.front; !h.IsNil(); {
		n, ok := q.nodes.Remove(h)
		if !ok {
			break
		}
		h = n.next
	}

	q.nodes.Reset()

	q.front = arena.Nil
	q.tail = arena.Nil
	q.size = 0
}

var _ queue.FIFOQueue[int] = (*Queue[int])(nil)
