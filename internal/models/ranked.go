package models

import "time"

// RankedItem is one entry of an editorial top-N list. Rank is 1-based and
// unique within its category; the list's order is authoritative, so rank is
// never recomputed from other fields.
type RankedItem struct {
	ID           string    `json:"id" yaml:"id" validate:"required"`
	Name         string    `json:"name" yaml:"name" validate:"required"`
	Blurb        string    `json:"blurb" yaml:"blurb"`
	Category     string    `json:"category" yaml:"category"`
	Neighborhood string    `json:"neighborhood" yaml:"neighborhood"`
	Rank         int       `json:"rank" yaml:"rank" validate:"gte=1"`
	Rating       float64   `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Tags         []string  `json:"tags" yaml:"tags"`
	Featured     bool      `json:"featured" yaml:"featured"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}
