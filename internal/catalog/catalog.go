// Package catalog owns the directory's record collections: loading the
// fixture data, validating its shape, and answering queries through the
// engine in internal/query. Collections are immutable once loaded; a reload
// builds a whole new Catalog.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/marta/city-scout/internal/models"
	"github.com/marta/city-scout/internal/query"
)

//go:embed fixtures/*.yaml
var fixturesFS embed.FS

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrNotFound          = errors.New("record not found")
)

// Collections lists the collection names the HTTP and CLI surfaces accept.
var Collections = []string{"deals", "events", "restaurants", "guides", "rankings", "posts"}

// defaultSorts is the order a listing page shows when the user has not
// picked one.
var defaultSorts = map[string]string{
	"deals":       "featured",
	"events":      "newest",
	"restaurants": "rating-high",
	"guides":      "newest",
	"rankings":    "rank-asc",
	"posts":       "newest",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type Catalog struct {
	Deals       []models.Deal
	Events      []models.Event
	Restaurants []models.Restaurant
	Guides      []models.Guide
	Ranked      []models.RankedItem
	Posts       []models.CommunityPost
}

// Load builds a catalog from the embedded fixtures. When dir is non-empty,
// a file of the same name under dir overrides its embedded counterpart;
// this is how local data tweaks and the admin reload work. Environment
// variables inside fixture files (e.g. ${CITY_NAME}) are expanded.
func Load(dir string) (*Catalog, error) {
	c := &Catalog{}
	if err := loadFixture(dir, "deals.yaml", &c.Deals); err != nil {
		return nil, err
	}
	if err := loadFixture(dir, "events.yaml", &c.Events); err != nil {
		return nil, err
	}
	if err := loadFixture(dir, "restaurants.yaml", &c.Restaurants); err != nil {
		return nil, err
	}
	if err := loadFixture(dir, "guides.yaml", &c.Guides); err != nil {
		return nil, err
	}
	if err := loadFixture(dir, "rankings.yaml", &c.Ranked); err != nil {
		return nil, err
	}
	if err := loadFixture(dir, "posts.yaml", &c.Posts); err != nil {
		return nil, err
	}

	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

func loadFixture[T any](dir, name string, out *[]T) error {
	data, err := fixturesFS.ReadFile("fixtures/" + name)
	if dir != "" {
		if fsData, fsErr := os.ReadFile(filepath.Join(dir, name)); fsErr == nil {
			data, err = fsData, nil
		}
	}
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), out); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}

	for i, rec := range *out {
		if err := validate.Struct(rec); err != nil {
			return fmt.Errorf("fixture %s record %d: %w", name, i, err)
		}
	}
	return nil
}

// check enforces the cross-record invariants: per-collection id uniqueness
// and rank uniqueness within each ranked category.
func (c *Catalog) check() error {
	if err := uniqueIDs("deals", c.Deals, func(d models.Deal) string { return d.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("events", c.Events, func(e models.Event) string { return e.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("restaurants", c.Restaurants, func(r models.Restaurant) string { return r.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("guides", c.Guides, func(g models.Guide) string { return g.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("rankings", c.Ranked, func(r models.RankedItem) string { return r.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("posts", c.Posts, func(p models.CommunityPost) string { return p.ID }); err != nil {
		return err
	}

	ranks := make(map[string]map[int]string)
	for _, item := range c.Ranked {
		if ranks[item.Category] == nil {
			ranks[item.Category] = make(map[int]string)
		}
		if other, dup := ranks[item.Category][item.Rank]; dup {
			return fmt.Errorf("rankings: rank %d in category %q used by both %q and %q",
				item.Rank, item.Category, other, item.ID)
		}
		ranks[item.Category][item.Rank] = item.ID
	}
	return nil
}

func uniqueIDs[T any](collection string, records []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		key := id(rec)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%s: duplicate id %q", collection, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Query runs one filter/sort/limit pass over the named collection and
// returns the page items plus the pre-truncation match count. The sort key
// falls back to the collection's default when empty.
func (c *Catalog) Query(collection string, crit query.Criteria, sortKey string, limit int) (any, int, error) {
	if sortKey == "" {
		sortKey = defaultSorts[collection]
	}
	switch collection {
	case "deals":
		return page(dealFields.Run(c.Deals, crit, sortKey, 0), limit)
	case "events":
		return page(eventFields.Run(c.Events, crit, sortKey, 0), limit)
	case "restaurants":
		return page(restaurantFields.Run(c.Restaurants, crit, sortKey, 0), limit)
	case "guides":
		return page(guideFields.Run(c.Guides, crit, sortKey, 0), limit)
	case "rankings":
		return page(rankedFields.Run(c.Ranked, crit, sortKey, 0), limit)
	case "posts":
		return page(postFields.Run(c.Posts, crit, sortKey, 0), limit)
	default:
		return nil, 0, ErrUnknownCollection
	}
}

func page[T any](items []T, limit int) (any, int, error) {
	total := len(items)
	if limit > 0 && limit < total {
		items = items[:limit]
	}
	return items, total, nil
}

// Get returns one record by id, or ErrNotFound / ErrUnknownCollection.
func (c *Catalog) Get(collection, id string) (any, error) {
	switch collection {
	case "deals":
		return find(c.Deals, id, func(d models.Deal) string { return d.ID })
	case "events":
		return find(c.Events, id, func(e models.Event) string { return e.ID })
	case "restaurants":
		return find(c.Restaurants, id, func(r models.Restaurant) string { return r.ID })
	case "guides":
		return find(c.Guides, id, func(g models.Guide) string { return g.ID })
	case "rankings":
		return find(c.Ranked, id, func(r models.RankedItem) string { return r.ID })
	case "posts":
		return find(c.Posts, id, func(p models.CommunityPost) string { return p.ID })
	default:
		return nil, ErrUnknownCollection
	}
}

func find[T any](records []T, id string, key func(T) string) (any, error) {
	for _, rec := range records {
		if key(rec) == id {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

// Counts returns the size of every collection, used by stats and the
// reload response.
func (c *Catalog) Counts() map[string]int {
	return map[string]int{
		"deals":       len(c.Deals),
		"events":      len(c.Events),
		"restaurants": len(c.Restaurants),
		"guides":      len(c.Guides),
		"rankings":    len(c.Ranked),
		"posts":       len(c.Posts),
	}
}
