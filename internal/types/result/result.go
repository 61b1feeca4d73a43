package result

type Result[T any] interface {
	Value() T
	Err() error
}

type ConcreteResult[T any] struct {
	Val   T
	Error error
}

func Ok[T any](v T) ConcreteResult[T] {
	return ConcreteResult[T]{Val: v}
}

func Fail[T any](err error) ConcreteResult[T] {
	return ConcreteResult[T]{Error: err}
}

func (r ConcreteResult[T]) Value() T {
	return r.Val
}

func (r ConcreteResult[T]) Err() error {
	return r.Error
}
