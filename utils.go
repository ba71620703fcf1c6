package quickdirective

import (
	"fmt"
	"sort"
)

// sortedKeys is a function that takes a map with string keys and returns a slice of
// its keys sorted in ascending order. Passes iterate schema maps through it so
// diagnostics come out in a stable order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, len(m))
	i := 0
	for k := range m {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	return keys
}

// toStringSlice is a function that takes a slice of items that implement the fmt.Stringer
// interface and returns a slice of their string representations.
func toStringSlice[T fmt.Stringer](items []T) []string {
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = item.String()
	}
	return result
}
