package model

import (
	"time"
)

// BackgroundColors is the fixed palette a note card can use.
var BackgroundColors = []string{
	"#ffffff", "#f28b82", "#fbbc04", "#fff475",
	"#ccff90", "#a7ffeb", "#cbf0f8", "#aecbfa",
	"#d7aefb", "#fdcfe8", "#e6c9a8", "#e8eaed",
}

const DefaultBackgroundColor = "#ffffff"

const MaxTags = 9

type Note struct {
	ID              string     `bson:"_id,omitempty" json:"id"`
	UserID          string     `bson:"user_id" json:"user_id"`
	Title           string     `bson:"title" json:"title" binding:"required"`
	Items           []string   `bson:"items" json:"items"`
	CompletedItems  []int      `bson:"completed_items" json:"completed_items"`
	Tags            []string   `bson:"tags,omitempty" json:"tags,omitempty"`
	BackgroundColor string     `bson:"background_color" json:"background_color"`
	DueDate         *time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	IsArchived      bool       `bson:"is_archived" json:"is_archived"`
	IsTrashed       bool       `bson:"is_trashed" json:"is_trashed"`
	TrashedAt       *time.Time `bson:"trashed_at,omitempty" json:"trashed_at,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updated_at"`
}

// ValidBackgroundColor reports whether color is part of the palette.
func ValidBackgroundColor(color string) bool {
	for _, c := range BackgroundColors {
		if c == color {
			return true
		}
	}
	return false
}
