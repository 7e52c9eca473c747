// Package kv stores assembled header fields as ordered key-value pairs.
package kv

import (
	"github.com/indigo-web/iter"
	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Storage keeps (key, value) pairs in arrival order and looks them up with
// a case-insensitive linear scan. Message heads carry few fields, so the
// scan beats a map both on insertion and on lookup.
type Storage struct {
	pairs      []Pair
	uniqueBuff []string
	valuesBuff []string
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns a Storage with space for n pairs reserved upfront.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// Add appends a pair, preserving duplicates and arrival order.
func (s *Storage) Add(key, value string) *Storage {
	s.pairs = append(s.pairs, Pair{Key: key, Value: value})

	return s
}

// Value returns the first value of the key, or an empty string.
func (s *Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns the first value of the key, or the fallback.
func (s *Storage) ValueOr(key, or string) string {
	value, found := s.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns the first value of the key and whether the key is present.
func (s *Storage) Get(key string) (string, bool) {
	for _, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Values returns all values of the key in arrival order, nil if absent.
//
// The returned slice is reused by the next Values call; copy it if it must
// survive one.
func (s *Storage) Values(key string) []string {
	s.valuesBuff = s.valuesBuff[:0]

	for _, pair := range s.pairs {
		if strcomp.EqualFold(pair.Key, key) {
			s.valuesBuff = append(s.valuesBuff, pair.Value)
		}
	}

	if len(s.valuesBuff) == 0 {
		return nil
	}

	return s.valuesBuff
}

// Keys returns all distinct keys. The returned slice is reused by the next
// Keys call; copy it if it must survive one.
func (s *Storage) Keys() []string {
	s.uniqueBuff = s.uniqueBuff[:0]

	for _, pair := range s.pairs {
		if !contains(s.uniqueBuff, pair.Key) {
			s.uniqueBuff = append(s.uniqueBuff, pair.Key)
		}
	}

	return s.uniqueBuff
}

// Has tells whether at least one pair with the key is present.
func (s *Storage) Has(key string) bool {
	_, found := s.Get(key)

	return found
}

func (s *Storage) Len() int {
	return len(s.pairs)
}

// Iter returns an iterator over the pairs in arrival order.
func (s *Storage) Iter() iter.Iterator[Pair] {
	return iter.Slice(s.pairs)
}

// Unwrap reveals the underlying pairs. Mostly for range loops; mutating the
// result mutates the storage.
func (s *Storage) Unwrap() []Pair {
	return s.pairs
}

// Clear drops all pairs, keeping the allocated space for the next message.
func (s *Storage) Clear() {
	s.pairs = s.pairs[:0]
}

func contains(collection []string, key string) bool {
	for _, element := range collection {
		if strcomp.EqualFold(element, key) {
			return true
		}
	}

	return false
}
