package pipe

import (
	"bufio"
	"io"
	"strings"
)

type Result[T any] struct {
	Error error
	Value T
}

// Ensures that the goroutine is finished on done being closed
func OrDone[T any](done <-chan struct{}, c <-chan T) <-chan T {
	stream := make(chan T)

	go func() {
		defer close(stream)

		for {
			select {
			case <-done:
				return
			case v, ok := <-c:
				if !ok {
					return
				}
				select {
				case stream <- v:
				case <-done:
				}
			}
		}
	}()

	return stream
}

// Streams the lines of r without a length limit. A read failure is sent as
// the last element.
func Lines(done <-chan struct{}, r io.Reader) <-chan Result[string] {
	out := make(chan Result[string])

	go func() {
		defer close(out)

		reader := bufio.NewReader(r)
		for {
			line, err := reader.ReadString('\n')
			if err != nil && err != io.EOF {
				select {
				case <-done:
				case out <- Result[string]{Error: err}:
				}
				return
			}
			if err == io.EOF && line == "" {
				return
			}

			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			select {
			case <-done:
				return
			case out <- Result[string]{Value: line}:
			}

			if err == io.EOF {
				return
			}
		}
	}()

	return out
}

// Maps from channel of type A to a channel of type B, keeping the order
func Map[A, B any](done <-chan struct{}, in <-chan A, mapper func(A) B) <-chan B {
	out := make(chan B)

	go func() {
		defer close(out)

		for val := range OrDone(done, in) {
			select {
			case <-done:
				return
			case out <- mapper(val):
			}
		}
	}()

	return out
}
