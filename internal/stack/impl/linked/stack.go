package linked

import (
	"github.com/Philanthropists/linkedcontainers/internal/stack"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a LIFO stack over a singly linked chain with a fixed capacity
// ceiling. It is not safe for concurrent use.
type Stack[T any] struct {
	head     *node[T]
	size     int
	capacity int
}

// New creates an unbounded stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{
		capacity: stack.Unbounded,
	}
}

// WithCapacity creates a stack holding at most n elements. A negative n is
// treated as zero.
func WithCapacity[T any](n int) *Stack[T] {
	if n < 0 {
		n = 0
	}

	return &Stack[T]{
		capacity: n,
	}
}

// Push puts v on top of the stack, or returns a stack.OverflowError if the
// stack is full.
func (s *Stack[T]) Push(v T) error {
	if s.IsFull() {
		return stack.OverflowError.New("size %d reached capacity %d", s.size, s.capacity)
	}

	s.head = &node[T]{
		value: v,
		next:  s.head,
	}
	s.size++

	return nil
}

// MustPush is like Push but panics on overflow.
func (s *Stack[T]) MustPush(v T) {
	if err := s.Push(v); err != nil {
		panic(err)
	}
}

func (s *Stack[T]) Pop() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}

	top := s.head
	s.head = top.next
	top.next = nil
	s.size--

	return top.value, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}

	return s.head.value, true
}

func (s *Stack[T]) Size() int {
	return s.size
}

func (s *Stack[T]) Capacity() int {
	return s.capacity
}

func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

func (s *Stack[T]) IsFull() bool {
	return s.size >= s.capacity
}

// Clear drops every element, unlinking the chain one node at a time.
func (s *Stack[T]) Clear() {
	for s.head != nil {
		top := s.head
		s.head = top.next
		top.next = nil
	}
	s.size = 0
}

var _ stack.LIFOStack[int] = (*Stack[int])(nil)
