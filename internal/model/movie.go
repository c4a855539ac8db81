package model

import "time"

type Movie struct {
	UUID      string     `db:"uuid" json:"uuid"`
	Title     string     `db:"title" json:"title"`
	Year      int        `db:"year" json:"year"`
	PosterKey *string    `db:"poster_key" json:"poster_key,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
