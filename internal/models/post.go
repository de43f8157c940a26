package models

import "time"

type CommunityPost struct {
	ID           string    `json:"id" yaml:"id" validate:"required"`
	Title        string    `json:"title" yaml:"title" validate:"required"`
	Body         string    `json:"body" yaml:"body"`
	Type         string    `json:"type" yaml:"type" validate:"omitempty,oneof=question lost-found volunteer"`
	Status       string    `json:"status" yaml:"status" validate:"omitempty,oneof=open resolved closed"`
	Category     string    `json:"category" yaml:"category"`
	Neighborhood string    `json:"neighborhood" yaml:"neighborhood"`
	Author       string    `json:"author" yaml:"author"`
	Tags         []string  `json:"tags" yaml:"tags"`
	Featured     bool      `json:"featured" yaml:"featured"`
	Responses    int       `json:"responses" yaml:"responses" validate:"gte=0"`
	Views        int       `json:"views" yaml:"views" validate:"gte=0"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}
