package entity

import (
	"fmt"
	"time"
)

// VoteValue is the direction of a vote on an album.
type VoteValue string

const (
	VoteUp   VoteValue = "up"
	VoteDown VoteValue = "down"
)

// Valid reports whether the value is one of the two accepted directions.
func (v VoteValue) Valid() bool {
	return v == VoteUp || v == VoteDown
}

// Vote is a single user's directional judgment on an album. Votes are issued
// by the remote authority and held here as read-only copies; the client never
// patches an individual vote.
type Vote struct {
	ID        string    `json:"id"`
	AlbumID   string    `json:"album_id"`
	UserID    string    `json:"user_id"`
	Value     VoteValue `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Album is the voted-on record managed by this system. Votes is the only
// field the client ever rewrites, and only by wholesale replacement with the
// authoritative set returned from a vote call.
type Album struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	ArtistName string    `json:"artist_name"`
	CoverImage *string   `json:"cover_image,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Votes      []Vote    `json:"votes"`
}

// Page is a verbatim snapshot of one list query result. It is immutable once
// stored; a later fetch for the same filter supersedes it.
type Page struct {
	Items      []Album `json:"items"`
	PageNumber int     `json:"page_number"`
	LastPage   int     `json:"last_page"`
	TotalCount int     `json:"total_count"`
}

// Filter identifies one list query. Two filters are equivalent iff both
// fields compare equal; Search == "" means no filtering.
type Filter struct {
	Page   int    `json:"page" validate:"min=1"`
	Search string `json:"search"`
}

// Key returns the canonical cache key for the filter.
func (f Filter) Key() string {
	return fmt.Sprintf("albums:list:%d-%s", f.Page, f.Search)
}
