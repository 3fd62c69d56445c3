package bencode

import (
	"fmt"
	"iter"

	"github.com/joshuapare/bencodekit/pkg/types"
)

// ListView is a View known to hold a list.
type ListView struct{ View }

// Len returns the number of elements, read from the descriptor.
func (l ListView) Len() int { return l.desc().Size() }

// Empty reports whether the list has no elements.
func (l ListView) Empty() bool { return l.Len() == 0 }

// All iterates the elements with their indices. Each step is O(1): nested
// containers are skipped by jumping to their end descriptor.
func (l ListView) All() iter.Seq2[int, View] {
	return func(yield func(int, View) bool) {
		end := l.t.end(l.i)
		for j, n := l.i+1, 0; j < end; j, n = l.t.skip(j), n+1 {
			if !yield(n, View{t: l.t, i: j}) {
				return
			}
		}
	}
}

// Values iterates the elements.
func (l ListView) Values() iter.Seq[View] {
	return func(yield func(View) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// At returns element i, or ErrOutOfRange.
func (l ListView) At(i int) (View, error) {
	if i < 0 || i >= l.Len() {
		return View{}, types.NewOutOfRange(fmt.Sprintf("list index %d out of range [0, %d)", i, l.Len()))
	}
	for n, v := range l.All() {
		if n == i {
			return v, nil
		}
	}
	return View{}, types.NewOutOfRange(fmt.Sprintf("list index %d out of range", i))
}

// Front returns the first element, or ErrOutOfRange when empty.
func (l ListView) Front() (View, error) {
	if l.Empty() {
		return View{}, types.NewOutOfRange("front of empty list")
	}
	return View{t: l.t, i: l.i + 1}, nil
}

// Back returns the last element, or ErrOutOfRange when empty.
func (l ListView) Back() (View, error) {
	if l.Empty() {
		return View{}, types.NewOutOfRange("back of empty list")
	}
	last := l.t.end(l.i) - 1
	if d := l.t.descs[last]; d.IsEnd() {
		last -= d.Offset()
	}
	return View{t: l.t, i: last}, nil
}
