package query

import "time"

// Fields is the accessor table that adapts one collection's record shape to
// the engine. Each accessor is optional: a nil entry means the collection has
// no such field, so any criterion or sort key needing it either excludes the
// record (filtering) or leaves the order unchanged (sorting).
type Fields[T any] struct {
	// SearchText returns the free-text searchable fields, typically
	// title, description and tags. Category is deliberately not part of
	// the searchable text.
	SearchText func(T) []string

	Category     func(T) string
	Neighborhood func(T) string

	// Days returns the weekday names a record applies to. Empty means
	// every day.
	Days func(T) []string

	// PriceTier returns the $..$$$$ tier label.
	PriceTier func(T) string

	// Rating returns the record's rating and whether one is set.
	Rating func(T) (float64, bool)

	Featured func(T) bool
	Verified func(T) bool
	Trending func(T) bool

	// Date is the collection's canonical chronology field (created-at,
	// start date, valid-from).
	Date func(T) time.Time

	// Name is the display name used by alphabetical sorts.
	Name func(T) string

	Views     func(T) int
	Responses func(T) int

	// Rank is a 1-based position, unique within a ranked list.
	Rank func(T) int

	// Savings is the estimated value of a deal in dollars.
	Savings func(T) float64

	// Window returns the valid-from/valid-until pair of records with an
	// availability window; ok is false when the record has none.
	Window func(T) (from, until time.Time, ok bool)
}
