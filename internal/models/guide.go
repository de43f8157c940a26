package models

import "time"

// Guide is a long-form editorial piece. Body is markdown; rendering to safe
// HTML happens at the presentation boundary, never here.
type Guide struct {
	ID           string    `json:"id" yaml:"id" validate:"required"`
	Title        string    `json:"title" yaml:"title" validate:"required"`
	Summary      string    `json:"summary" yaml:"summary"`
	Body         string    `json:"body,omitempty" yaml:"body"`
	Category     string    `json:"category" yaml:"category"`
	Neighborhood string    `json:"neighborhood" yaml:"neighborhood"`
	Author       string    `json:"author" yaml:"author"`
	Tags         []string  `json:"tags" yaml:"tags"`
	Featured     bool      `json:"featured" yaml:"featured"`
	Rating       float64   `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Views        int       `json:"views" yaml:"views" validate:"gte=0"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}
