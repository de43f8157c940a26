package query

import (
	"reflect"
	"testing"
	"time"
)

// item is a synthetic record exercising every accessor the engine knows
// about.
type item struct {
	id        string
	title     string
	desc      string
	category  string
	hood      string
	tier      string
	tags      []string
	days      []string
	rating    float64
	hasRating bool
	featured  bool
	verified  bool
	trending  bool
	created   time.Time
	views     int
	responses int
	rank      int
	savings   float64
	from      time.Time
	until     time.Time
	hasWindow bool
}

var itemFields = Fields[item]{
	SearchText:   func(i item) []string { return append([]string{i.title, i.desc}, i.tags...) },
	Category:     func(i item) string { return i.category },
	Neighborhood: func(i item) string { return i.hood },
	Days:         func(i item) []string { return i.days },
	PriceTier:    func(i item) string { return i.tier },
	Rating:       func(i item) (float64, bool) { return i.rating, i.hasRating },
	Featured:     func(i item) bool { return i.featured },
	Verified:     func(i item) bool { return i.verified },
	Trending:     func(i item) bool { return i.trending },
	Date:         func(i item) time.Time { return i.created },
	Name:         func(i item) string { return i.title },
	Views:        func(i item) int { return i.views },
	Responses:    func(i item) int { return i.responses },
	Rank:         func(i item) int { return i.rank },
	Savings:      func(i item) float64 { return i.savings },
	Window:       func(i item) (time.Time, time.Time, bool) { return i.from, i.until, i.hasWindow },
}

func ids(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// threeDeals is the canonical filter/sort scenario set.
func threeDeals() []item {
	return []item{
		{id: "1", title: "Taco Night", category: "Food", featured: true, rating: 4.5, hasRating: true, created: day(2026, 1, 10)},
		{id: "2", title: "Pizza Party", category: "Food", rating: 4.9, hasRating: true, created: day(2026, 2, 10)},
		{id: "3", title: "Cocktail Hour", category: "Drink", rating: 3.0, hasRating: true, created: day(2026, 3, 10)},
	}
}

func TestRun_CategoryThenFeatured(t *testing.T) {
	got := itemFields.Run(threeDeals(), Criteria{Category: "Food"}, "featured", 0)
	want := []string{"1", "2"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestRun_RatingHigh(t *testing.T) {
	got := itemFields.Run(threeDeals(), Criteria{}, "rating-high", 0)
	want := []string{"2", "1", "3"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestRun_SearchIgnoresCategoryField(t *testing.T) {
	// Record 3's category is "Drink" but no text field contains the word;
	// free-text search only looks at title, description and tags.
	got := itemFields.Run(threeDeals(), Criteria{Search: "drink"}, "newest", 0)
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}
}

func TestRun_EmptyCollection(t *testing.T) {
	got := itemFields.Run(nil, Criteria{Category: "Food", MinRating: 4}, "newest", 5)
	if got == nil {
		t.Fatal("result must be non-nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d items", len(got))
	}
}

func TestRun_ActiveOnlyFutureWindow(t *testing.T) {
	now := day(2026, 6, 1)
	records := []item{
		{id: "future", category: "Food", from: day(2026, 7, 1), until: day(2026, 8, 1), hasWindow: true},
		{id: "current", category: "Food", from: day(2026, 5, 1), until: day(2026, 7, 1), hasWindow: true},
	}
	got := itemFields.Run(records, Criteria{Category: "Food", ActiveOnly: true, Now: now}, "", 0)
	if !reflect.DeepEqual(ids(got), []string{"current"}) {
		t.Fatalf("expected only the current deal, got %v", ids(got))
	}
}

func TestRun_Idempotent(t *testing.T) {
	crit := Criteria{Category: "Food"}
	first := itemFields.Run(threeDeals(), crit, "rating-high", 0)
	second := itemFields.Run(first, Criteria{}, "rating-high", 0)
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Fatalf("re-running is not a fixed point: %v vs %v", ids(first), ids(second))
	}
}

func TestRun_ANDSemantics(t *testing.T) {
	records := []item{
		{id: "a", category: "Food", hood: "Midtown"},
		{id: "b", category: "Food", hood: "Riverside"},
		{id: "c", category: "Drink", hood: "Midtown"},
	}

	both := itemFields.Run(records, Criteria{Category: "Food", Neighborhood: "Midtown"}, "", 0)
	if !reflect.DeepEqual(ids(both), []string{"a"}) {
		t.Fatalf("expected intersection [a], got %v", ids(both))
	}

	byCat := itemFields.Run(records, Criteria{Category: "Food"}, "", 0)
	byHood := itemFields.Run(records, Criteria{Neighborhood: "Midtown"}, "", 0)

	inBoth := map[string]bool{}
	for _, it := range byCat {
		inBoth[it.id] = true
	}
	var intersection []string
	for _, it := range byHood {
		if inBoth[it.id] {
			intersection = append(intersection, it.id)
		}
	}
	if !reflect.DeepEqual(ids(both), intersection) {
		t.Fatalf("combined criteria %v != intersection %v", ids(both), intersection)
	}
}

func TestRun_Monotonic(t *testing.T) {
	loose := itemFields.Run(threeDeals(), Criteria{Category: "Food"}, "", 0)
	tight := itemFields.Run(threeDeals(), Criteria{Category: "Food", MinRating: 4.8}, "", 0)
	if len(tight) > len(loose) {
		t.Fatalf("adding a constraint grew the result: %d > %d", len(tight), len(loose))
	}
}

func TestRun_PlaceholdersAreNoOps(t *testing.T) {
	records := threeDeals()
	baseline := itemFields.Run(records, Criteria{}, "newest", 0)

	placeholderCrit := Criteria{
		Category:     "All Categories",
		Neighborhood: "All Neighborhoods",
		Day:          "All Days",
		PriceRange:   "All Prices",
		Search:       "   ",
	}
	got := itemFields.Run(records, placeholderCrit, "newest", 0)
	if !reflect.DeepEqual(ids(got), ids(baseline)) {
		t.Fatalf("placeholder criteria changed the result: %v vs %v", ids(got), ids(baseline))
	}
	if len(got) != len(records) {
		t.Fatalf("expected all %d records, got %d", len(records), len(got))
	}
}

func TestRun_SearchCaseInsensitive(t *testing.T) {
	upper := itemFields.Run(threeDeals(), Criteria{Search: "PIZZA"}, "", 0)
	lower := itemFields.Run(threeDeals(), Criteria{Search: "pizza"}, "", 0)
	if !reflect.DeepEqual(ids(upper), ids(lower)) {
		t.Fatalf("case changed search results: %v vs %v", ids(upper), ids(lower))
	}
	if len(upper) != 1 || upper[0].id != "2" {
		t.Fatalf("expected [2], got %v", ids(upper))
	}
}

func TestRun_Limit(t *testing.T) {
	got := itemFields.Run(threeDeals(), Criteria{}, "rating-high", 2)
	if !reflect.DeepEqual(ids(got), []string{"2", "1"}) {
		t.Fatalf("limit applied after sort should keep top-rated two, got %v", ids(got))
	}
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	records := threeDeals()
	before := ids(records)
	_ = itemFields.Run(records, Criteria{}, "rating-high", 1)
	if !reflect.DeepEqual(ids(records), before) {
		t.Fatalf("input reordered: %v", ids(records))
	}
}

func TestMatches(t *testing.T) {
	now := day(2026, 6, 15)
	tests := []struct {
		name string
		rec  item
		crit Criteria
		want bool
	}{
		{
			name: "search matches tags",
			rec:  item{title: "Happy Hour", tags: []string{"beer", "patio"}},
			crit: Criteria{Search: "patio"},
			want: true,
		},
		{
			name: "search trims surrounding whitespace",
			rec:  item{title: "Happy Hour"},
			crit: Criteria{Search: "  happy  "},
			want: true,
		},
		{
			name: "min rating excludes unrated record",
			rec:  item{title: "No Rating"},
			crit: Criteria{MinRating: 3},
			want: false,
		},
		{
			name: "min rating inclusive at threshold",
			rec:  item{rating: 4.0, hasRating: true},
			crit: Criteria{MinRating: 4.0},
			want: true,
		},
		{
			name: "day matches case-insensitively",
			rec:  item{days: []string{"Tuesday"}},
			crit: Criteria{Day: "tuesday"},
			want: true,
		},
		{
			name: "empty day set applies every day",
			rec:  item{days: nil},
			crit: Criteria{Day: "Sunday"},
			want: true,
		},
		{
			name: "day mismatch excludes",
			rec:  item{days: []string{"Monday", "Friday"}},
			crit: Criteria{Day: "Sunday"},
			want: false,
		},
		{
			name: "active window inclusive on both ends",
			rec:  item{from: day(2026, 6, 15), until: day(2026, 6, 15), hasWindow: true},
			crit: Criteria{ActiveOnly: true, Now: now},
			want: true,
		},
		{
			name: "inverted window is never active",
			rec:  item{from: day(2026, 7, 1), until: day(2026, 5, 1), hasWindow: true},
			crit: Criteria{ActiveOnly: true, Now: now},
			want: false,
		},
		{
			name: "record without window fails activeOnly",
			rec:  item{},
			crit: Criteria{ActiveOnly: true, Now: now},
			want: false,
		},
		{
			name: "verified flag",
			rec:  item{verified: false},
			crit: Criteria{VerifiedOnly: true},
			want: false,
		},
		{
			name: "trending flag",
			rec:  item{trending: true},
			crit: Criteria{TrendingOnly: true},
			want: true,
		},
		{
			name: "price tier exact match",
			rec:  item{tier: "$$"},
			crit: Criteria{PriceRange: "$$"},
			want: true,
		},
		{
			name: "price tier mismatch",
			rec:  item{tier: "$$$"},
			crit: Criteria{PriceRange: "$$"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := itemFields.Matches(tt.rec, tt.crit); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

// A collection whose accessor table lacks a field must exclude records when
// that criterion is active, not error.
func TestMatches_MissingAccessorExcludes(t *testing.T) {
	bare := Fields[item]{
		SearchText: func(i item) []string { return []string{i.title} },
	}

	if bare.Matches(item{title: "x"}, Criteria{MinRating: 1}) {
		t.Fatal("min rating with no rating accessor must not match")
	}
	if bare.Matches(item{title: "x"}, Criteria{Category: "Food"}) {
		t.Fatal("category filter with no category accessor must not match")
	}
	if !bare.Matches(item{title: "x"}, Criteria{}) {
		t.Fatal("empty criteria must match")
	}
}
