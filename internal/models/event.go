package models

import "time"

// EventPrice keeps the free flag separate from the amount so "free" never
// depends on a zero-value ambiguity.
type EventPrice struct {
	IsFree bool    `json:"is_free" yaml:"is_free"`
	Amount float64 `json:"amount" yaml:"amount" validate:"gte=0"`
}

type Event struct {
	ID           string     `json:"id" yaml:"id" validate:"required"`
	Title        string     `json:"title" yaml:"title" validate:"required"`
	Description  string     `json:"description" yaml:"description"`
	Category     string     `json:"category" yaml:"category"`
	Neighborhood string     `json:"neighborhood" yaml:"neighborhood"`
	Venue        string     `json:"venue" yaml:"venue"`
	StartDate    time.Time  `json:"start_date" yaml:"start_date"`
	StartTime    string     `json:"start_time,omitempty" yaml:"start_time"`
	EndTime      string     `json:"end_time,omitempty" yaml:"end_time"`
	Price        EventPrice `json:"price" yaml:"price"`
	Tags         []string   `json:"tags" yaml:"tags"`
	Featured     bool       `json:"featured" yaml:"featured"`
	Verified     bool       `json:"verified" yaml:"verified"`
	Rating       float64    `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Views        int        `json:"views" yaml:"views" validate:"gte=0"`
	CreatedAt    time.Time  `json:"created_at" yaml:"created_at"`
}
