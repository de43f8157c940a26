package query

import (
	"sort"
	"strings"
	"time"
)

// Sort returns a copy of records ordered by the named sort key. The sort is
// stable, so records that compare equal keep their input order. An
// unrecognized key (or one the collection has no fields for) returns the
// input order unchanged; sort keys arrive straight from form controls, so an
// unknown value must never be an error.
func (f Fields[T]) Sort(records []T, key string) []T {
	out := make([]T, len(records))
	copy(out, records)

	cmp := f.comparator(key)
	if cmp == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j]) < 0
	})
	return out
}

// comparator maps a sort-key name to a three-way comparison, or nil when the
// key is unknown or needs a field this collection does not have.
func (f Fields[T]) comparator(key string) func(a, b T) int {
	switch key {
	case "newest":
		if f.Date == nil {
			return nil
		}
		return func(a, b T) int { return compareTime(f.Date(b), f.Date(a)) }
	case "oldest":
		if f.Date == nil {
			return nil
		}
		return func(a, b T) int { return compareTime(f.Date(a), f.Date(b)) }
	case "most-views":
		if f.Views == nil {
			return nil
		}
		return func(a, b T) int { return f.Views(b) - f.Views(a) }
	case "most-responses":
		if f.Responses == nil {
			return nil
		}
		return func(a, b T) int { return f.Responses(b) - f.Responses(a) }
	case "featured":
		// Featured records first, newest within each group.
		if f.Featured == nil || f.Date == nil {
			return nil
		}
		return func(a, b T) int {
			af, bf := f.Featured(a), f.Featured(b)
			if af != bf {
				if af {
					return -1
				}
				return 1
			}
			return compareTime(f.Date(b), f.Date(a))
		}
	case "rating-high":
		if f.Rating == nil {
			return nil
		}
		return func(a, b T) int { return compareFloat(ratingOrZero(f, b), ratingOrZero(f, a)) }
	case "rating-low":
		if f.Rating == nil {
			return nil
		}
		return func(a, b T) int { return compareFloat(ratingOrZero(f, a), ratingOrZero(f, b)) }
	case "name-asc", "title-asc":
		if f.Name == nil {
			return nil
		}
		return func(a, b T) int { return compareFold(f.Name(a), f.Name(b)) }
	case "name-desc":
		if f.Name == nil {
			return nil
		}
		return func(a, b T) int { return compareFold(f.Name(b), f.Name(a)) }
	case "price-asc":
		if f.PriceTier == nil {
			return nil
		}
		return func(a, b T) int { return tierOrdinal(f.PriceTier(a)) - tierOrdinal(f.PriceTier(b)) }
	case "price-desc":
		if f.PriceTier == nil {
			return nil
		}
		return func(a, b T) int { return tierOrdinal(f.PriceTier(b)) - tierOrdinal(f.PriceTier(a)) }
	case "rank-asc":
		if f.Rank == nil {
			return nil
		}
		return func(a, b T) int { return f.Rank(a) - f.Rank(b) }
	case "rank-desc":
		if f.Rank == nil {
			return nil
		}
		return func(a, b T) int { return f.Rank(b) - f.Rank(a) }
	case "savings-high":
		if f.Savings == nil {
			return nil
		}
		return func(a, b T) int { return compareFloat(f.Savings(b), f.Savings(a)) }
	case "savings-low":
		if f.Savings == nil {
			return nil
		}
		return func(a, b T) int { return compareFloat(f.Savings(a), f.Savings(b)) }
	case "expiring-soon":
		if f.Window == nil {
			return nil
		}
		// Soonest valid-until first; records without a window sort last.
		return func(a, b T) int {
			_, ua, aok := f.Window(a)
			_, ub, bok := f.Window(b)
			if aok != bok {
				if aok {
					return -1
				}
				return 1
			}
			if !aok {
				return 0
			}
			return compareTime(ua, ub)
		}
	default:
		return nil
	}
}

func ratingOrZero[T any](f Fields[T], rec T) float64 {
	r, ok := f.Rating(rec)
	if !ok {
		return 0
	}
	return r
}

// tierOrdinal maps "$".."$$$$" to 1..4. Anything else counts as 0 so
// malformed tiers sort together at the front rather than erroring.
func tierOrdinal(tier string) int {
	tier = strings.TrimSpace(tier)
	for _, r := range tier {
		if r != '$' {
			return 0
		}
	}
	return len(tier)
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
