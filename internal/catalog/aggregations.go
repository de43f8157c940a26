package catalog

import (
	"sort"

	"github.com/marta/city-scout/internal/query"
)

// Aggregation is a single facet count.
type Aggregation struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// AggregationResult contains the facet counts for a listing page's sidebar
// filters.
type AggregationResult struct {
	Categories    []Aggregation `json:"categories"`
	Neighborhoods []Aggregation `json:"neighborhoods"`
}

// Aggregations computes facet counts for one collection under the given
// criteria. Each dimension excludes its own filter, so the sidebar always
// shows every option with correct counts even while one is selected.
func (c *Catalog) Aggregations(collection string, crit query.Criteria) (*AggregationResult, error) {
	switch collection {
	case "deals":
		return aggregate(c.Deals, dealFields, crit), nil
	case "events":
		return aggregate(c.Events, eventFields, crit), nil
	case "restaurants":
		return aggregate(c.Restaurants, restaurantFields, crit), nil
	case "guides":
		return aggregate(c.Guides, guideFields, crit), nil
	case "rankings":
		return aggregate(c.Ranked, rankedFields, crit), nil
	case "posts":
		return aggregate(c.Posts, postFields, crit), nil
	default:
		return nil, ErrUnknownCollection
	}
}

func aggregate[T any](records []T, f query.Fields[T], crit query.Criteria) *AggregationResult {
	result := &AggregationResult{}

	if f.Category != nil {
		noCat := crit
		noCat.Category = ""
		result.Categories = facet(records, f, noCat, f.Category)
	}
	if f.Neighborhood != nil {
		noHood := crit
		noHood.Neighborhood = ""
		result.Neighborhoods = facet(records, f, noHood, f.Neighborhood)
	}
	return result
}

func facet[T any](records []T, f query.Fields[T], crit query.Criteria, dim func(T) string) []Aggregation {
	counts := make(map[string]int)
	for _, rec := range records {
		if !f.Matches(rec, crit) {
			continue
		}
		if v := dim(rec); v != "" {
			counts[v]++
		}
	}

	out := make([]Aggregation, 0, len(counts))
	for value, count := range counts {
		out = append(out, Aggregation{Value: value, Count: count})
	}
	// Highest count first, alphabetical within ties, so the response is
	// deterministic.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// Stats summarizes the whole catalog for the public stats endpoint.
func (c *Catalog) Stats() map[string]any {
	stats := make(map[string]any)
	stats["collections"] = c.Counts()

	total := 0
	for _, n := range c.Counts() {
		total += n
	}
	stats["total"] = total

	featured := 0
	for _, d := range c.Deals {
		if d.Featured {
			featured++
		}
	}
	for _, e := range c.Events {
		if e.Featured {
			featured++
		}
	}
	for _, r := range c.Restaurants {
		if r.Featured {
			featured++
		}
	}
	stats["featured"] = featured

	verified := 0
	for _, d := range c.Deals {
		if d.Verified {
			verified++
		}
	}
	for _, r := range c.Restaurants {
		if r.Verified {
			verified++
		}
	}
	stats["verified"] = verified

	hoods := make(map[string]struct{})
	for _, d := range c.Deals {
		hoods[d.Neighborhood] = struct{}{}
	}
	for _, e := range c.Events {
		hoods[e.Neighborhood] = struct{}{}
	}
	for _, r := range c.Restaurants {
		hoods[r.Neighborhood] = struct{}{}
	}
	delete(hoods, "")
	stats["neighborhoods"] = len(hoods)

	return stats
}
