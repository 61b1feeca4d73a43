package arena

import "math"

// shrinkSlots is the slot count above which an arena that becomes empty
// drops its storage instead of keeping it for reuse.
const shrinkSlots = 1024

// Handle addresses a value stored in an Arena. The zero value is Nil and
// never resolves to a value.
type Handle struct {
	index uint32
	gen   uint32
}

// Nil is the handle that points nowhere.
var Nil = Handle{}

func (h Handle) IsNil() bool {
	return h.gen == 0
}

type slot[T any] struct {
	value    T
	gen      uint32
	occupied bool
}

// Arena stores values in a contiguous slice and hands out generational
// handles to them. A handle stays valid until its value is removed; after
// that it never resolves again, even if the slot gets reused.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
	// floor is the generation given to new slots. It is raised past every
	// generation ever issued when the storage is dropped.
	floor  uint32
	maxGen uint32
}

func New[T any]() *Arena[T] {
	return &Arena[T]{
		floor: 1,
	}
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if uint64(len(a.slots)) >= math.MaxUint32 {
			panic("arena: out of slots")
		}
		if a.floor == 0 {
			a.floor = 1
		}
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{gen: a.floor})
	}

	s := &a.slots[idx]
	s.value = v
	s.occupied = true
	a.live++
	if s.gen > a.maxGen {
		a.maxGen = s.gen
	}

	return Handle{index: idx, gen: s.gen}
}

func (a *Arena[T]) resolve(h Handle) (*slot[T], bool) {
	if h.IsNil() || int(h.index) >= len(a.slots) {
		return nil, false
	}

	s := &a.slots[h.index]
	if !s.occupied || s.gen != h.gen {
		return nil, false
	}

	return s, true
}

// Get returns a pointer to the value behind h. The pointer is only valid
// until the next call to Insert.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	s, ok := a.resolve(h)
	if !ok {
		return nil, false
	}

	return &s.value, true
}

func (a *Arena[T]) Contains(h Handle) bool {
	_, ok := a.resolve(h)
	return ok
}

// Remove releases the slot behind h and returns the value it held. Once
// the arena is empty, large storage is dropped.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	s, ok := a.resolve(h)
	if !ok {
		var zero T
		return zero, false
	}

	v := s.value
	a.release(h.index)

	if a.live == 0 && cap(a.slots) > shrinkSlots {
		a.Reset()
	}

	return v, true
}

func (a *Arena[T]) release(idx uint32) {
	s := &a.slots[idx]

	var zero T
	s.value = zero
	s.occupied = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	if s.gen > a.maxGen {
		a.maxGen = s.gen
	}

	a.free = append(a.free, idx)
	a.live--
}

// Reset drops every value and the storage holding them. Handles issued
// before the reset never resolve afterwards.
func (a *Arena[T]) Reset() {
	a.slots = nil
	a.free = nil
	a.live = 0
	a.floor = a.maxGen + 1
}

func (a *Arena[T]) Len() int {
	return a.live
}

// Cap returns the number of slots currently allocated.
func (a *Arena[T]) Cap() int {
	return cap(a.slots)
}
