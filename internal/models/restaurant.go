package models

import "time"

type Restaurant struct {
	ID           string    `json:"id" yaml:"id" validate:"required"`
	Name         string    `json:"name" yaml:"name" validate:"required"`
	Description  string    `json:"description" yaml:"description"`
	Cuisine      string    `json:"cuisine" yaml:"cuisine"`
	Neighborhood string    `json:"neighborhood" yaml:"neighborhood"`
	Address      string    `json:"address" yaml:"address"`
	PriceRange   string    `json:"price_range" yaml:"price_range" validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	Rating       float64   `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	ReviewCount  int       `json:"review_count" yaml:"review_count" validate:"gte=0"`
	Tags         []string  `json:"tags" yaml:"tags"`
	Featured     bool      `json:"featured" yaml:"featured"`
	Verified     bool      `json:"verified" yaml:"verified"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}
