package pipe

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken")
}

func collect[T any](c <-chan T) []T {
	var out []T
	for v := range c {
		out = append(out, v)
	}
	return out
}

func Test_LinesKeepsOrder(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	lines := collect(Lines(done, strings.NewReader("a\nb\n\nc")))

	require.Len(t, lines, 4)
	for i, expected := range []string{"a", "b", "", "c"} {
		assert.NoError(t, lines[i].Error)
		assert.Equal(t, expected, lines[i].Value)
	}
}

func Test_LongLinesDoNotStopTheStream(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	long := strings.Repeat("x", 70000)
	lines := collect(Lines(done, strings.NewReader("a\n"+long+"\r\nb\n")))

	require.Len(t, lines, 3)
	for i, expected := range []string{"a", long, "b"} {
		assert.NoError(t, lines[i].Error)
		assert.Equal(t, expected, lines[i].Value)
	}
}

func Test_LinesReportsReadError(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	lines := collect(Lines(done, failingReader{}))

	require.Len(t, lines, 1)
	assert.EqualError(t, lines[0].Error, "broken")
}

func Test_MapKeepsOrder(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	in := make(chan int)
	go func() {
		defer close(in)
		for i := 0; i < 100; i++ {
			in <- i
		}
	}()

	out := collect(Map(done, in, func(v int) int { return v * 2 }))

	require.Len(t, out, 100)
	for i, v := range out {
		assert.Equal(t, i*2, v)
	}
}

func Test_OrDoneStopsWhenDoneIsClosed(t *testing.T) {
	done := make(chan struct{})
	never := make(chan int)

	stream := OrDone(done, never)
	close(done)

	_, ok := <-stream
	assert.False(t, ok)
}
