package models

import "time"

// Discount describes how a deal reduces the price.
type Discount struct {
	Type  string  `json:"type" yaml:"type" validate:"omitempty,oneof=percentage dollar bogo free-item"`
	Value float64 `json:"value" yaml:"value" validate:"gte=0"`
	Label string  `json:"label" yaml:"label"`
}

type Deal struct {
	ID           string    `json:"id" yaml:"id" validate:"required"`
	Title        string    `json:"title" yaml:"title" validate:"required"`
	Description  string    `json:"description" yaml:"description"`
	Business     string    `json:"business" yaml:"business"`
	Category     string    `json:"category" yaml:"category"`
	Neighborhood string    `json:"neighborhood" yaml:"neighborhood"`
	Tags         []string  `json:"tags" yaml:"tags"`
	Discount     Discount  `json:"discount" yaml:"discount"`
	Savings      float64   `json:"savings" yaml:"savings" validate:"gte=0"`
	ValidFrom    time.Time `json:"valid_from" yaml:"valid_from"`
	ValidUntil   time.Time `json:"valid_until" yaml:"valid_until"`
	DaysOfWeek   []string  `json:"days_of_week" yaml:"days_of_week" validate:"dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime    string    `json:"start_time,omitempty" yaml:"start_time"` // "17:00"
	EndTime      string    `json:"end_time,omitempty" yaml:"end_time"`
	Featured     bool      `json:"featured" yaml:"featured"`
	Verified     bool      `json:"verified" yaml:"verified"`
	Trending     bool      `json:"trending" yaml:"trending"`
	Rating       float64   `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Views        int       `json:"views" yaml:"views" validate:"gte=0"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}
