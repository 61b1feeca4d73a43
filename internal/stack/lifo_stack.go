package stack

import (
	"math"

	"github.com/zeebo/errs"
)

// Unbounded is the capacity of a stack created without a ceiling.
const Unbounded = math.MaxInt

// OverflowError is returned when a push would exceed the stack capacity.
var OverflowError = errs.Class("stack overflow")

type LIFOStack[T any] interface {
	Push(T) error
	Pop() (T, bool)
	Peek() (T, bool)
	Size() int
	Capacity() int
	IsEmpty() bool
	IsFull() bool
	Clear()
}
