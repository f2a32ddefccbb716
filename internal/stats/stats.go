// Package stats provides pure reductions over entity snapshots for dashboard
// display. Nothing here mutates its input; callers pass fresh collections and
// get derived values back.
package stats

import (
	"math"
	"sort"
	"time"
)

// Sum adds up a numeric field across the collection. An empty collection sums
// to zero.
func Sum[T any](items []T, value func(T) int) int {
	total := 0
	for _, it := range items {
		total += value(it)
	}
	return total
}

// CountWhere counts the entities satisfying pred.
func CountWhere[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// Ratio returns round(num / (num + den) * 100). When both operands are zero
// there is nothing to compare and the ratio is zero.
func Ratio(num, den int) int {
	if num == 0 && den == 0 {
		return 0
	}
	return int(math.Round(float64(num) / float64(num+den) * 100))
}

// MostRecent returns the n newest entries by the given timestamp, newest
// first. The sort is stable: entries with equal timestamps keep their input
// order. The input slice is left untouched.
func MostRecent[T any](items []T, date func(T) time.Time, n int) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return date(sorted[i]).After(date(sorted[j]))
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Grouped holds one or more summed numeric series keyed by category, with
// categories in first-seen input order.
type Grouped struct {
	keys []string
	sums map[string][]int
}

// Keys returns the category labels in first-seen order.
func (g *Grouped) Keys() []string { return g.keys }

// Values returns the summed series for a category, one entry per value
// selector passed to GroupSum.
func (g *Grouped) Values(key string) []int { return g.sums[key] }

// Len returns the number of categories.
func (g *Grouped) Len() int { return len(g.keys) }

// Max returns the largest value across all categories and series, or zero for
// an empty grouping.
func (g *Grouped) Max() int {
	max := 0
	for _, vs := range g.sums {
		for _, v := range vs {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// GroupSum buckets items by key and sums one series per value selector.
func GroupSum[T any](items []T, key func(T) string, values ...func(T) int) *Grouped {
	g := &Grouped{sums: make(map[string][]int)}
	for _, it := range items {
		k := key(it)
		if _, seen := g.sums[k]; !seen {
			g.keys = append(g.keys, k)
			g.sums[k] = make([]int, len(values))
		}
		for i, value := range values {
			g.sums[k][i] += value(it)
		}
	}
	return g
}
