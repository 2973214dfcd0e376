// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import (
	"cmp"
	"maps"
	"slices"
)

// Distinct creates a producer over items with duplicates removed.
// The first occurrence of each value keeps its position.
func Distinct[T comparable](items ...T) *Producer[T] {
	seen := make(map[T]struct{}, len(items))
	unique := make([]T, 0, len(items))
	for _, v := range items {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	return &Producer[T]{items: unique}
}

// Entry is a key/value pair produced by [Sorted].
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Sorted creates a producer over the entries of m in ascending key order.
// Go maps have no insertion order, so key order stands in for it and keeps
// the sequence deterministic. The entries are captured at construction.
func Sorted[K cmp.Ordered, V any](m map[K]V) *Producer[Entry[K, V]] {
	keys := slices.Sorted(maps.Keys(m))
	entries := make([]Entry[K, V], len(keys))
	for i, k := range keys {
		entries[i] = Entry[K, V]{Key: k, Value: m[k]}
	}
	return &Producer[Entry[K, V]]{items: entries}
}
