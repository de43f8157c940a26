package catalog

import (
	"time"

	"github.com/marta/city-scout/internal/models"
	"github.com/marta/city-scout/internal/query"
)

// Accessor tables adapting each record shape to the query engine. An
// accessor left nil means the collection has no such field.

var dealFields = query.Fields[models.Deal]{
	SearchText: func(d models.Deal) []string {
		return append([]string{d.Title, d.Description, d.Business}, d.Tags...)
	},
	Category:     func(d models.Deal) string { return d.Category },
	Neighborhood: func(d models.Deal) string { return d.Neighborhood },
	Days:         func(d models.Deal) []string { return d.DaysOfWeek },
	Rating:       func(d models.Deal) (float64, bool) { return d.Rating, d.Rating > 0 },
	Featured:     func(d models.Deal) bool { return d.Featured },
	Verified:     func(d models.Deal) bool { return d.Verified },
	Trending:     func(d models.Deal) bool { return d.Trending },
	Date:         func(d models.Deal) time.Time { return d.CreatedAt },
	Name:         func(d models.Deal) string { return d.Title },
	Views:        func(d models.Deal) int { return d.Views },
	Savings:      func(d models.Deal) float64 { return d.Savings },
	Window: func(d models.Deal) (time.Time, time.Time, bool) {
		if d.ValidFrom.IsZero() && d.ValidUntil.IsZero() {
			return time.Time{}, time.Time{}, false
		}
		return d.ValidFrom, d.ValidUntil, true
	},
}

var eventFields = query.Fields[models.Event]{
	SearchText: func(e models.Event) []string {
		return append([]string{e.Title, e.Description, e.Venue}, e.Tags...)
	},
	Category:     func(e models.Event) string { return e.Category },
	Neighborhood: func(e models.Event) string { return e.Neighborhood },
	// An event applies to the weekday it starts on.
	Days:     func(e models.Event) []string { return []string{e.StartDate.Weekday().String()} },
	Rating:   func(e models.Event) (float64, bool) { return e.Rating, e.Rating > 0 },
	Featured: func(e models.Event) bool { return e.Featured },
	Verified: func(e models.Event) bool { return e.Verified },
	Date:     func(e models.Event) time.Time { return e.StartDate },
	Name:     func(e models.Event) string { return e.Title },
	Views:    func(e models.Event) int { return e.Views },
}

var restaurantFields = query.Fields[models.Restaurant]{
	SearchText: func(r models.Restaurant) []string {
		return append([]string{r.Name, r.Description}, r.Tags...)
	},
	Category:     func(r models.Restaurant) string { return r.Cuisine },
	Neighborhood: func(r models.Restaurant) string { return r.Neighborhood },
	PriceTier:    func(r models.Restaurant) string { return r.PriceRange },
	Rating:       func(r models.Restaurant) (float64, bool) { return r.Rating, r.Rating > 0 },
	Featured:     func(r models.Restaurant) bool { return r.Featured },
	Verified:     func(r models.Restaurant) bool { return r.Verified },
	Date:         func(r models.Restaurant) time.Time { return r.CreatedAt },
	Name:         func(r models.Restaurant) string { return r.Name },
	Responses:    func(r models.Restaurant) int { return r.ReviewCount },
}

var guideFields = query.Fields[models.Guide]{
	SearchText: func(g models.Guide) []string {
		return append([]string{g.Title, g.Summary}, g.Tags...)
	},
	Category:     func(g models.Guide) string { return g.Category },
	Neighborhood: func(g models.Guide) string { return g.Neighborhood },
	Rating:       func(g models.Guide) (float64, bool) { return g.Rating, g.Rating > 0 },
	Featured:     func(g models.Guide) bool { return g.Featured },
	Date:         func(g models.Guide) time.Time { return g.CreatedAt },
	Name:         func(g models.Guide) string { return g.Title },
	Views:        func(g models.Guide) int { return g.Views },
}

var rankedFields = query.Fields[models.RankedItem]{
	SearchText: func(r models.RankedItem) []string {
		return append([]string{r.Name, r.Blurb}, r.Tags...)
	},
	Category:     func(r models.RankedItem) string { return r.Category },
	Neighborhood: func(r models.RankedItem) string { return r.Neighborhood },
	Rating:       func(r models.RankedItem) (float64, bool) { return r.Rating, r.Rating > 0 },
	Featured:     func(r models.RankedItem) bool { return r.Featured },
	Date:         func(r models.RankedItem) time.Time { return r.CreatedAt },
	Name:         func(r models.RankedItem) string { return r.Name },
	Rank:         func(r models.RankedItem) int { return r.Rank },
}

var postFields = query.Fields[models.CommunityPost]{
	SearchText: func(p models.CommunityPost) []string {
		return append([]string{p.Title, p.Body}, p.Tags...)
	},
	Category:     func(p models.CommunityPost) string { return p.Category },
	Neighborhood: func(p models.CommunityPost) string { return p.Neighborhood },
	Featured:     func(p models.CommunityPost) bool { return p.Featured },
	Date:         func(p models.CommunityPost) time.Time { return p.CreatedAt },
	Name:         func(p models.CommunityPost) string { return p.Title },
	Views:        func(p models.CommunityPost) int { return p.Views },
	Responses:    func(p models.CommunityPost) int { return p.Responses },
}
