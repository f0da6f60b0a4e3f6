package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Max[A constraints.Ordered](a, b A) A {
	if a > b {
		return a
	}
	return b
}

func Min[A constraints.Ordered](a, b A) A {
	if a < b {
		return a
	}
	return b
}
