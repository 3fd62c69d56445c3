package bencode

import (
	"iter"
	"slices"
	"strings"
)

// Entry is one key/value pair of a Dict.
type Entry struct {
	Key   string
	Value Value
}

// Dict maps string keys to values and keeps its entries sorted by key, so it
// always encodes canonically.
type Dict struct {
	entries []Entry
}

func (d *Dict) search(key string) (int, bool) {
	return slices.BinarySearchFunc(d.entries, key, func(e Entry, k string) int {
		return strings.Compare(e.Key, k)
	})
}

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.entries) }

// Get returns a pointer to the value stored under key.
func (d *Dict) Get(key string) (*Value, bool) {
	i, ok := d.search(key)
	if !ok {
		return nil, false
	}
	return &d.entries[i].Value, true
}

// Contains reports whether key is present.
func (d *Dict) Contains(key string) bool {
	_, ok := d.search(key)
	return ok
}

// Set stores v under key, replacing any existing value.
func (d *Dict) Set(key string, v Value) {
	// Decoded canonical input arrives in order; append without searching.
	if n := len(d.entries); n == 0 || d.entries[n-1].Key < key {
		d.entries = append(d.entries, Entry{Key: key, Value: v})
		return
	}
	i, ok := d.search(key)
	if ok {
		d.entries[i].Value = v
		return
	}
	d.entries = slices.Insert(d.entries, i, Entry{Key: key, Value: v})
}

// Delete removes key and reports whether it was present.
func (d *Dict) Delete(key string) bool {
	i, ok := d.search(key)
	if ok {
		d.entries = slices.Delete(d.entries, i, i+1)
	}
	return ok
}

// Entries returns the sorted entries. Values may be modified in place; keys
// must not be.
func (d *Dict) Entries() []Entry { return d.entries }

// Keys iterates the keys in sorted order.
func (d *Dict) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range d.entries {
			if !yield(d.entries[i].Key) {
				return
			}
		}
	}
}

// All iterates entries in key order, yielding pointers into the dict.
func (d *Dict) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for i := range d.entries {
			if !yield(d.entries[i].Key, &d.entries[i].Value) {
				return
			}
		}
	}
}

func (d *Dict) clone() *Dict {
	out := &Dict{entries: make([]Entry, len(d.entries))}
	for i, e := range d.entries {
		out.entries[i] = Entry{Key: e.Key, Value: e.Value.Clone()}
	}
	return out
}
