package logs

import (
	"strings"

	"trailview/internal/config"
)

// Filter retains records whose raw line contains a search query.
// It keeps the last accepted query and its result so repeated queries
// skip recomputation.
type Filter struct {
	lastQuery  string
	lastResult []Record
}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Apply returns the records in all whose raw line contains query,
// case-insensitively, preserving order. Queries shorter than three
// characters after trimming disable filtering and return all unchanged;
// the stored last query is deliberately left untouched in that case.
func (f *Filter) Apply(all []Record, query string) []Record {
	trimmed := strings.TrimSpace(query)

	if len([]rune(trimmed)) < config.MinQueryLength {
		return all
	}

	if trimmed == f.lastQuery {
		return f.lastResult
	}

	needle := strings.ToLower(trimmed)
	matched := make([]Record, 0, len(all))

	for _, r := range all {
		if strings.Contains(strings.ToLower(r.RawLog), needle) {
			matched = append(matched, r)
		}
	}

	f.lastQuery = trimmed
	f.lastResult = matched

	return matched
}

// Reset clears the cached query and result, for use when the source
// list itself is replaced.
func (f *Filter) Reset() {
	f.lastQuery = ""
	f.lastResult = nil
}
