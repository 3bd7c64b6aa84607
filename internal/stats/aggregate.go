// Package stats computes the descriptive statistics printed for a filtered
// trip dataset. Every function is read-only over the dataset.
package stats

import (
	"cmp"
	"slices"

	"bikeshare.onebusaway.org/internal/models"
)

type group[K comparable] struct {
	key   K
	count int
}

// countBy groups trips by key, dropping trips for which key reports false.
// Groups come back ordered by descending count; equal counts keep ascending
// key order.
func countBy[K comparable](trips []models.Trip, key func(models.Trip) (K, bool), compare func(a, b K) int) []group[K] {
	counts := make(map[K]int)
	for _, trip := range trips {
		k, ok := key(trip)
		if !ok {
			continue
		}
		counts[k]++
	}

	groups := make([]group[K], 0, len(counts))
	for k, n := range counts {
		groups = append(groups, group[K]{key: k, count: n})
	}
	slices.SortFunc(groups, func(a, b group[K]) int {
		return compare(a.key, b.key)
	})
	slices.SortStableFunc(groups, func(a, b group[K]) int {
		return cmp.Compare(b.count, a.count)
	})
	return groups
}

func toDistribution[K comparable](header []string, groups []group[K], cells func(K) []string) models.Distribution {
	rows := make([]models.DistributionRow, len(groups))
	for i, g := range groups {
		rows[i] = models.DistributionRow{Keys: cells(g.key), Count: g.count}
	}
	return models.Distribution{Header: header, Rows: rows}
}

// CountByText builds the full distribution of a text field. Blank values are
// treated as missing and left out.
func CountByText(ds *models.Dataset, column, countLabel string, field func(models.Trip) string) models.Distribution {
	groups := countBy(ds.Trips(), func(t models.Trip) (string, bool) {
		v := field(t)
		return v, v != ""
	}, cmp.Compare[string])
	return toDistribution([]string{column, countLabel}, groups, func(k string) []string {
		return []string{k}
	})
}

// CountByNumber builds the full distribution of an integer field.
func CountByNumber(ds *models.Dataset, column, countLabel string, field func(models.Trip) int) models.Distribution {
	groups := countBy(ds.Trips(), func(t models.Trip) (int, bool) {
		return field(t), true
	}, cmp.Compare[int])
	return toDistribution([]string{column, countLabel}, groups, func(k int) []string {
		return []string{formatInt(k)}
	})
}

type pair struct {
	first, second string
}

func comparePairs(a, b pair) int {
	if c := cmp.Compare(a.first, b.first); c != 0 {
		return c
	}
	return cmp.Compare(a.second, b.second)
}

// CountByPair builds the full distribution of two text fields taken together.
// A trip is counted only when both values are present.
func CountByPair(ds *models.Dataset, header []string, first, second func(models.Trip) string) models.Distribution {
	groups := countBy(ds.Trips(), func(t models.Trip) (pair, bool) {
		p := pair{first: first(t), second: second(t)}
		return p, p.first != "" && p.second != ""
	}, comparePairs)
	return toDistribution(header, groups, func(p pair) []string {
		return []string{p.first, p.second}
	})
}
