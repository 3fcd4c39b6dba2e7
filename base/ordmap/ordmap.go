// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map that keeps items in the
// order in which they were first added, while providing key-based
// lookup and removal. It is used for registries whose iteration order
// is part of their contract, such as listener lists.
package ordmap

import (
	"fmt"
	"slices"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map. Order holds the items in insertion
// order, and index maps each key to its position in Order.
type Map[K comparable, V any] struct {

	// Order is the ordered list of key-value pairs.
	Order []KeyValue[K, V]

	index map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Init initializes the map if it isn't already.
func (om *Map[K, V]) Init() {
	if om.index == nil {
		om.index = make(map[K]int, len(om.Order))
		for i, kv := range om.Order {
			om.index[kv.Key] = i
		}
	}
}

// Reset removes all items.
func (om *Map[K, V]) Reset() {
	om.index = nil
	om.Order = nil
}

// Add adds the value for the given key. An existing key keeps its
// position and has its value replaced; a new key goes to the end.
func (om *Map[K, V]) Add(key K, val V) {
	om.Init()
	if idx, has := om.index[key]; has {
		om.Order[idx].Value = val
		return
	}
	om.index[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// ValueByKeyTry returns the value for the given key,
// with false returned for a missing key.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	om.Init()
	if idx, ok := om.index[key]; ok {
		return om.Order[idx].Value, true
	}
	var zv V
	return zv, false
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// DeleteKey deletes the item with the given key, returning false
// if it is not present. Items after it are renumbered.
func (om *Map[K, V]) DeleteKey(key K) bool {
	om.Init()
	idx, ok := om.index[key]
	if !ok {
		return false
	}
	delete(om.index, key)
	for o := idx + 1; o < len(om.Order); o++ {
		om.index[om.Order[o].Key] = o - 1
	}
	om.Order = slices.Delete(om.Order, idx, idx+1)
	return true
}

// Keys returns a new slice of the keys in order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, om.Len())
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// Values returns a new slice of the values in order. Callers may
// range over the result while the map itself is being modified.
func (om *Map[K, V]) Values() []V {
	vl := make([]V, om.Len())
	for i, kv := range om.Order {
		vl[i] = kv.Value
	}
	return vl
}

// String returns a string representation of the map.
func (om *Map[K, V]) String() string {
	return fmt.Sprintf("%v", om.Order)
}
