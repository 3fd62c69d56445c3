package adapter

import (
	"reflect"
	"sync"

	"github.com/joshuapare/bencodekit/bencode"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// Registry maps Go types to adapters. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	adapters map[reflect.Type]any
}

// NewRegistry returns a registry preloaded with the built-in adapters for
// int64, int, string, and []byte.
func NewRegistry() *Registry {
	r := &Registry{adapters: make(map[reflect.Type]any)}
	Register(r, Int64)
	Register(r, Int)
	Register(r, String)
	Register(r, Bytes)
	return r
}

// Register installs a for T, replacing any previous adapter.
func Register[T any](r *Registry, a Adapter[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.adapters == nil {
		r.adapters = make(map[reflect.Type]any)
	}
	r.adapters[reflect.TypeFor[T]()] = a
}

// Lookup returns the adapter registered for T.
func Lookup[T any](r *Registry) (Adapter[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[reflect.TypeFor[T]()].(Adapter[T])
	return a, ok
}

func lookup[T any](r *Registry) (Adapter[T], error) {
	a, ok := Lookup[T](r)
	if !ok {
		return a, &types.ConversionError{Code: types.UndefinedConversion}
	}
	return a, nil
}

// Decode converts v to T with the adapter registered for T.
func Decode[T any](r *Registry, v bencode.Value) (T, error) {
	a, err := lookup[T](r)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.Decode(v)
}

// Encode bencodes x with the adapter registered for T.
func Encode[T any](r *Registry, x T) ([]byte, error) {
	a, err := lookup[T](r)
	if err != nil {
		return nil, err
	}
	return a.Encode(x), nil
}

// ToValue converts x with the adapter registered for T.
func ToValue[T any](r *Registry, x T) (bencode.Value, error) {
	a, err := lookup[T](r)
	if err != nil {
		return bencode.Value{}, err
	}
	return a.ToValue(x), nil
}
