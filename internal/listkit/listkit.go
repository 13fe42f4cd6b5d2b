// Package listkit is the shared predicate/comparator engine behind every
// filterable screen (users, rights, RMA records, requisitions). Screens
// declare field extractors and sorters once; the engine applies text search,
// conjunctive equality filters and a stable multi-key sort identically
// everywhere.
package listkit

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var collator = collate.New(language.English)

// CompareStrings is the locale-aware ordering used for every string sort.
func CompareStrings(a, b string) int {
	return collator.CompareString(a, b)
}

// Engine describes how one record type is searched, filtered and sorted.
type Engine[T any] struct {
	// SearchFields extracts the strings the free-text search matches
	// against (case-insensitive substring).
	SearchFields func(T) []string
	// Fields maps a filter slot name to its value extractor. Derived
	// boolean classifications are exposed here as plain strings
	// (e.g. "has-rights" / "no-rights").
	Fields map[string]func(T) string
	// Sorters maps a sort key to a three-way comparator. Ties keep input
	// order (the applied sort is stable).
	Sorters map[string]func(a, b T) int
	// DefaultSort is the key Clear resets to and the fallback for
	// unknown sort keys.
	DefaultSort string
}

// Query is one screen's current filter state.
type Query struct {
	Search  string
	Filters map[string]string
	SortKey string
}

// Apply returns the filtered, sorted view of records. The input slice is
// never mutated.
func (e *Engine[T]) Apply(records []T, q Query) []T {
	out := make([]T, 0, len(records))
	term := strings.ToLower(strings.TrimSpace(q.Search))

	for _, r := range records {
		if term != "" && !e.matchesSearch(r, term) {
			continue
		}
		if !e.matchesFilters(r, q.Filters) {
			continue
		}
		out = append(out, r)
	}

	e.sortRecords(out, q.SortKey)
	return out
}

func (e *Engine[T]) matchesSearch(r T, term string) bool {
	if e.SearchFields == nil {
		return true
	}
	for _, field := range e.SearchFields(r) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Empty filter values are "no constraint"; a record passes only when every
// active constraint matches.
func (e *Engine[T]) matchesFilters(r T, filters map[string]string) bool {
	for name, want := range filters {
		if want == "" {
			continue
		}
		extract, ok := e.Fields[name]
		if !ok {
			continue
		}
		if extract(r) != want {
			return false
		}
	}
	return true
}

func (e *Engine[T]) sortRecords(records []T, sortKey string) {
	cmp, ok := e.Sorters[sortKey]
	if !ok {
		cmp, ok = e.Sorters[e.DefaultSort]
		if !ok {
			return
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return cmp(records[i], records[j]) < 0
	})
}

// ActiveFilterCount counts the non-empty equality filter slots. Search and
// sort selection are UI state, not filters, and are excluded.
func ActiveFilterCount(q Query) int {
	count := 0
	for _, v := range q.Filters {
		if v != "" {
			count++
		}
	}
	return count
}

// Clear resets every slot and the sort key in one step.
func (e *Engine[T]) Clear() Query {
	return Query{
		Filters: make(map[string]string),
		SortKey: e.DefaultSort,
	}
}
