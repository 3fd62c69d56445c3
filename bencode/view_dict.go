package bencode

import (
	"fmt"
	"iter"

	"github.com/joshuapare/bencodekit/pkg/types"
)

// DictView is a View known to hold a dict. Keys are visited in encoded
// order, which is sorted for canonical input.
type DictView struct{ View }

// Len returns the number of key/value pairs.
func (d DictView) Len() int { return d.desc().Size() }

// Empty reports whether the dict has no pairs.
func (d DictView) Empty() bool { return d.Len() == 0 }

// All iterates key/value pairs in encoded order.
func (d DictView) All() iter.Seq2[StringView, View] {
	return func(yield func(StringView, View) bool) {
		end := d.t.end(d.i)
		for j := d.i + 1; j < end; j = d.t.skip(j + 1) {
			if !yield(StringView{View{t: d.t, i: j}}, View{t: d.t, i: j + 1}) {
				return
			}
		}
	}
}

// Keys iterates the keys in encoded order.
func (d DictView) Keys() iter.Seq[StringView] {
	return func(yield func(StringView) bool) {
		for k := range d.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Find returns the value of the first pair whose key equals key.
func (d DictView) Find(key string) (View, bool) {
	for k, v := range d.All() {
		if string(k.Bytes()) == key {
			return v, true
		}
	}
	return View{}, false
}

// At returns the value for key, or ErrOutOfRange.
func (d DictView) At(key string) (View, error) {
	if v, ok := d.Find(key); ok {
		return v, nil
	}
	return View{}, types.NewOutOfRange(fmt.Sprintf("key %q not found", key))
}

// Contains reports whether key is present.
func (d DictView) Contains(key string) bool {
	_, ok := d.Find(key)
	return ok
}

// Count returns how many pairs use key. Canonical input has at most one.
func (d DictView) Count(key string) int {
	n := 0
	for k := range d.All() {
		if string(k.Bytes()) == key {
			n++
		}
	}
	return n
}
