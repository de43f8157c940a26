// Package query implements the filter/sort/search engine shared by every
// catalog collection. It is pure: inputs are never mutated and every call
// returns a fresh slice.
package query

import (
	"strings"
	"time"
)

// Criteria is one query's filter configuration. Every field is optional;
// the zero value of a field (or one of the UI placeholder labels below)
// means "do not filter on this dimension". Active criteria combine with
// AND semantics.
type Criteria struct {
	Search       string
	Category     string
	Neighborhood string
	Day          string
	PriceRange   string
	MinRating    float64
	ActiveOnly   bool
	VerifiedOnly bool
	FeaturedOnly bool
	TrendingOnly bool

	// Now anchors date-relative criteria (ActiveOnly). Zero means the
	// wall clock; tests pass a fixed time.
	Now time.Time
}

// Placeholder labels the site's dropdowns use for "no selection". They are
// treated the same as an empty string.
var placeholders = map[string]struct{}{
	"All Categories":    {},
	"All Locations":     {},
	"All Neighborhoods": {},
	"All Days":          {},
	"All Prices":        {},
}

// selection returns the effective filter value and whether the criterion
// is active at all.
func selection(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	if _, ok := placeholders[v]; ok {
		return "", false
	}
	return v, true
}

func (c Criteria) clock() time.Time {
	if c.Now.IsZero() {
		return time.Now()
	}
	return c.Now
}

// Matches reports whether a single record passes every active criterion.
// A record that lacks a field referenced by an active criterion does not
// match; it never causes an error.
func (f Fields[T]) Matches(rec T, c Criteria) bool {
	if q := strings.TrimSpace(c.Search); q != "" {
		if f.SearchText == nil {
			return false
		}
		q = strings.ToLower(q)
		hit := false
		for _, field := range f.SearchText(rec) {
			if strings.Contains(strings.ToLower(field), q) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if want, ok := selection(c.Category); ok {
		if f.Category == nil || f.Category(rec) != want {
			return false
		}
	}

	if want, ok := selection(c.Neighborhood); ok {
		if f.Neighborhood == nil || f.Neighborhood(rec) != want {
			return false
		}
	}

	if want, ok := selection(c.Day); ok {
		if f.Days == nil {
			return false
		}
		days := f.Days(rec)
		// An empty day set means the record applies every day.
		if len(days) > 0 && !containsFold(days, want) {
			return false
		}
	}

	if want, ok := selection(c.PriceRange); ok {
		if f.PriceTier == nil || f.PriceTier(rec) != want {
			return false
		}
	}

	if c.MinRating > 0 {
		if f.Rating == nil {
			return false
		}
		r, ok := f.Rating(rec)
		if !ok || r < c.MinRating {
			return false
		}
	}

	if c.ActiveOnly {
		if f.Window == nil {
			return false
		}
		from, until, ok := f.Window(rec)
		if !ok {
			return false
		}
		// An inverted window is malformed data; such a record is never
		// considered active.
		if from.After(until) {
			return false
		}
		now := c.clock()
		if now.Before(from) || now.After(until) {
			return false
		}
	}

	if c.VerifiedOnly && (f.Verified == nil || !f.Verified(rec)) {
		return false
	}
	if c.FeaturedOnly && (f.Featured == nil || !f.Featured(rec)) {
		return false
	}
	if c.TrendingOnly && (f.Trending == nil || !f.Trending(rec)) {
		return false
	}

	return true
}

func containsFold(list []string, want string) bool {
	for _, v := range list {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
