// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package savename

import (
	"iter"
	"maps"
	"slices"

	"github.com/pkg/errors"
)

// Params is an insertion-ordered mapping of parameter names to values.
//
// The zero value is not usable, create it with NewParams or FromMap. A nil *Params behaves as an
// empty read-only mapping.
type Params struct {
	keys   []string
	values map[string]any
}

// NewParams returns an empty Params.
func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

// FromMap creates a Params with the contents of m, inserted in sorted key order.
func FromMap(m map[string]any) *Params {
	p := NewParams()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		p.Set(key, m[key])
	}
	return p
}

// Set the value of key. A new key is appended at the end, an existing key keeps its position.
// It returns p, so calls can be chained.
func (p *Params) Set(key string, value any) *Params {
	if _, found := p.values[key]; !found {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value of key and whether it was found.
func (p *Params) Get(key string) (value any, found bool) {
	if p == nil {
		return nil, false
	}
	value, found = p.values[key]
	return
}

// Has returns whether key is set.
func (p *Params) Has(key string) bool {
	_, found := p.Get(key)
	return found
}

// Delete removes key, if present.
func (p *Params) Delete(key string) {
	if !p.Has(key) {
		return
	}
	delete(p.values, key)
	p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == key })
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns a copy of the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.keys)
}

// All iterates over the parameters in insertion order.
func (p *Params) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if p == nil {
			return
		}
		for _, key := range p.keys {
			if !yield(key, p.values[key]) {
				return
			}
		}
	}
}

// Map returns a copy of the parameters as a Go map.
func (p *Params) Map() map[string]any {
	m := make(map[string]any, p.Len())
	for key, value := range p.All() {
		m[key] = value
	}
	return m
}

// Clone returns a copy of p.
func (p *Params) Clone() *Params {
	clone := NewParams()
	for key, value := range p.All() {
		clone.Set(key, value)
	}
	return clone
}

// reset replaces the contents of p by those of other.
func (p *Params) reset(other *Params) {
	p.keys = p.keys[:0]
	clear(p.values)
	for key, value := range other.All() {
		p.Set(key, value)
	}
}

// String encodes the parameters with the default settings.
func (p *Params) String() string {
	return Encode(p, "")
}

// GetOr returns the value of key if it is set and holds a T, otherwise it returns defaultValue.
//
// An int value is accepted when T is float64, since "lr=1" decodes as an int.
func GetOr[T any](p *Params, key string, defaultValue T) T {
	value, found := p.Get(key)
	if !found || value == nil {
		return defaultValue
	}
	if typed, ok := convert[T](value); ok {
		return typed
	}
	return defaultValue
}

// MustGet returns the value of key as a T. It panics if key is not set or holds a value
// that can't be converted to T.
func MustGet[T any](p *Params, key string) T {
	value, found := p.Get(key)
	if !found {
		panic(errors.Errorf("savename parameter %q not set", key))
	}
	typed, ok := convert[T](value)
	if !ok {
		var zero T
		panic(errors.Errorf("savename parameter %q is a %T (%v), wanted %T", key, value, value, zero))
	}
	return typed
}

func convert[T any](value any) (T, bool) {
	if typed, ok := value.(T); ok {
		return typed, true
	}
	var result T
	if ptr, ok := any(&result).(*float64); ok {
		if i, isInt := value.(int); isInt {
			*ptr = float64(i)
			return result, true
		}
	}
	return result, false
}
