// Package livedata serves the homepage's "right now" widgets: weather and
// transit snapshots. Real upstream integrations are out of scope here, so
// snapshots are deterministic mocks derived from the date, cached the same
// way a live integration's responses would be.
package livedata

import (
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

var ErrUnknownFeed = errors.New("unknown feed")

// Feeds lists the feed names the API accepts.
var Feeds = []string{"weather", "transit"}

type Service struct {
	cache *cache.Cache
}

func New(ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Service{cache: cache.New(ttl, 2*ttl)}
}

// Snapshot returns the named feed's current payload. Snapshots are cached
// per feed and hour so repeated widget loads are cheap.
func (s *Service) Snapshot(feed string, now time.Time) (any, error) {
	key := fmt.Sprintf("%s:%s", feed, now.UTC().Format("2006-01-02T15"))
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	var snap any
	switch feed {
	case "weather":
		snap = weatherSnapshot(now)
	case "transit":
		snap = transitSnapshot(now)
	default:
		return nil, ErrUnknownFeed
	}

	s.cache.Set(key, snap, cache.DefaultExpiration)
	return snap, nil
}

type WeatherSnapshot struct {
	Condition string    `json:"condition"`
	TempC     int       `json:"temp_c"`
	HighC     int       `json:"high_c"`
	LowC      int       `json:"low_c"`
	Humidity  int       `json:"humidity"`
	AsOf      time.Time `json:"as_of"`
}

type TransitLine struct {
	Line   string `json:"line"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type TransitSnapshot struct {
	Lines []TransitLine `json:"lines"`
	AsOf  time.Time     `json:"as_of"`
}

var conditions = []string{"Sunny", "Partly Cloudy", "Overcast", "Light Rain", "Clear"}

func weatherSnapshot(now time.Time) WeatherSnapshot {
	day := now.UTC().YearDay()
	base := 12 + day%14
	return WeatherSnapshot{
		Condition: conditions[day%len(conditions)],
		TempC:     base + now.UTC().Hour()/4,
		HighC:     base + 6,
		LowC:      base - 4,
		Humidity:  45 + day%40,
		AsOf:      now.UTC().Truncate(time.Hour),
	}
}

func transitSnapshot(now time.Time) TransitSnapshot {
	day := now.UTC().YearDay()
	lines := []TransitLine{
		{Line: "Blue Line", Status: "On Time"},
		{Line: "Harbor Ferry", Status: "On Time"},
		{Line: "Route 12 Bus", Status: "On Time"},
	}
	// One line rotates into a delay so the widget exercises its degraded
	// rendering path.
	delayed := day % len(lines)
	lines[delayed].Status = "Delayed"
	lines[delayed].Detail = "Minor delays, 10-15 min"
	return TransitSnapshot{Lines: lines, AsOf: now.UTC().Truncate(time.Hour)}
}
