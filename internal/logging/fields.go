package logging

import (
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Keys shared by every component that logs about containers.
const (
	ComponentKey = "component"
	ContainerKey = "container"
	KindKey      = "kind"
	SizeKey      = "size"
	CapacityKey  = "capacity"
	CommandKey   = "command"
	LineKey      = "line"
	FullKey      = "full"
	EmptyKey     = "empty"
)

func Duration[S ~string](s S, t time.Duration) Field {
	return zap.Duration(string(s), t)
}

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Bool[S ~string](s S, v bool) Field {
	return zap.Bool(string(s), v)
}

func Error(err error) Field {
	return zap.Error(err)
}

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}

func Container(name string) Field {
	return String(ContainerKey, name)
}

func Size(n int) Field {
	return Int(SizeKey, n)
}

// Capacity logs an unbounded capacity (math.MaxInt) as -1.
func Capacity(n int) Field {
	if n == math.MaxInt {
		return Int(CapacityKey, -1)
	}
	return Int(CapacityKey, n)
}
