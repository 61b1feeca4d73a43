package mutex

import (
	"sync"

	"github.com/Philanthropists/linkedcontainers/internal/stack"
	"github.com/Philanthropists/linkedcontainers/internal/stack/impl/linked"
)

type mutexLifoStack[T any] struct {
	Inner stack.LIFOStack[T]
	Mutex *sync.Mutex
}

// CreateStack guards inner with a mutex. A nil inner gets a new unbounded
// linked stack.
func CreateStack[T any](inner stack.LIFOStack[T]) *mutexLifoStack[T] {
	if inner == nil {
		inner = linked.New[T]()
	}

	return &mutexLifoStack[T]{
		Inner: inner,
		Mutex: &sync.Mutex{},
	}
}

func (s *mutexLifoStack[T]) Push(e T) error {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	return s.Inner.Push(e)
}

func (s *mutexLifoStack[T]) Pop() (T, bool) {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	return s.Inner.Pop()
}

func (s *mutexLifoStack[T]) Peek() (T, bool) {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	return s.Inner.Peek()
}

func (s *mutexLifoStack[T]) Size() int {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	return s.Inner.Size()
}

func (s *mutexLifoStack[T]) Capacity() int {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	return s.Inner.Capacity()
}

func (s *mutexLifoStack[T]) IsEmpty() bool {
	return s.Size() == 0
}

func (s *mutexLifoStack[T]) IsFull() bool {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	return s.Inner.IsFull()
}

func (s *mutexLifoStack[T]) Clear() {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	s.Inner.Clear()
}
