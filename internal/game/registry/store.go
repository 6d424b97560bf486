// Package registry provides the keyed entity store shared by areas, groups,
// items, exits and inventories.
package registry

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/cory-johannsen/nightfall/internal/game/dice"
)

// ErrNotFound is returned (wrapped) when a key or name is not in a Store.
var ErrNotFound = errors.New("not found")

// Named is implemented by values that can be looked up by display name.
type Named interface {
	Name() string
}

// Store is an insertion-ordered keyed collection with a case-insensitive
// secondary index over display names.
//
// Invariant: every entry in names maps to a key present in data, and every
// Named value with a non-empty name is reachable through names unless a later
// value with the same name has replaced it.
type Store[T any] struct {
	order []string
	data  map[string]T
	names map[string]string // lowercased name → key
}

// New returns an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{
		data:  make(map[string]T),
		names: make(map[string]string),
	}
}

// Add inserts or overwrites the value stored under key. Overwriting keeps the
// key's original position. If value implements Named its name is indexed.
//
// Postcondition: Get(key) returns value.
func (s *Store[T]) Add(key string, value T) {
	if old, exists := s.data[key]; exists {
		s.unindex(key, old)
	} else {
		s.order = append(s.order, key)
	}
	s.data[key] = value
	if name := nameOf(value); name != "" {
		s.names[strings.ToLower(name)] = key
	}
}

// Get returns the value stored under key.
//
// Postcondition: Returns an error wrapping ErrNotFound if key is absent.
func (s *Store[T]) Get(key string) (T, error) {
	v, ok := s.data[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("key %q: %w", key, ErrNotFound)
	}
	return v, nil
}

// GetSafe returns the value stored under key and whether it was present.
func (s *Store[T]) GetSafe(key string) (T, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Store[T]) Has(key string) bool {
	_, ok := s.data[key]
	return ok
}

// GetByName resolves a display name case-insensitively.
func (s *Store[T]) GetByName(name string) (T, bool) {
	key, ok := s.names[strings.ToLower(name)]
	if !ok {
		var zero T
		return zero, false
	}
	return s.GetSafe(key)
}

// Remove deletes key from both indices.
//
// Postcondition: Returns an error wrapping ErrNotFound if key was absent.
func (s *Store[T]) Remove(key string) error {
	v, ok := s.data[key]
	if !ok {
		return fmt.Errorf("removing key %q: %w", key, ErrNotFound)
	}
	s.unindex(key, v)
	delete(s.data, key)
	s.order = slices.DeleteFunc(s.order, func(k string) bool { return k == key })
	return nil
}

// RemoveByName deletes the value with the given display name and returns it.
func (s *Store[T]) RemoveByName(name string) (T, bool) {
	key, ok := s.names[strings.ToLower(name)]
	if !ok {
		var zero T
		return zero, false
	}
	v := s.data[key]
	_ = s.Remove(key)
	return v, true
}

// Len returns the number of entries.
func (s *Store[T]) Len() int {
	return len(s.order)
}

// Keys returns all keys in insertion order.
func (s *Store[T]) Keys() []string {
	return slices.Clone(s.order)
}

// Values returns all values in insertion order.
func (s *Store[T]) Values() []T {
	out := make([]T, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.data[k])
	}
	return out
}

// All iterates over key/value pairs in insertion order.
func (s *Store[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, k := range slices.Clone(s.order) {
			v, ok := s.data[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// GetRandom returns a uniformly chosen value whose key is not in exclude.
//
// Postcondition: Returns (zero, false) when every key is excluded or the store
// is empty; otherwise the returned value's key is not in exclude.
func (s *Store[T]) GetRandom(src dice.Source, exclude ...string) (T, bool) {
	candidates := make([]string, 0, len(s.order))
	for _, k := range s.order {
		if !slices.Contains(exclude, k) {
			candidates = append(candidates, k)
		}
	}
	if len(candidates) == 0 {
		var zero T
		return zero, false
	}
	return s.data[candidates[src.Intn(len(candidates))]], true
}

func (s *Store[T]) unindex(key string, v T) {
	name := nameOf(v)
	if name == "" {
		return
	}
	lower := strings.ToLower(name)
	if s.names[lower] == key {
		delete(s.names, lower)
	}
}

func nameOf(v any) string {
	if n, ok := v.(Named); ok && n != nil {
		return n.Name()
	}
	return ""
}
