package model

import "github.com/google/uuid"

type ContentType string

const (
	ContentMovie ContentType = "movie"
	ContentShow  ContentType = "show"
)

func (t ContentType) Valid() bool {
	return t == ContentMovie || t == ContentShow
}

// ContentRef points at a single catalog entry regardless of its kind.
type ContentRef struct {
	Type ContentType
	ID   uuid.UUID
}

const EmptyTitle string = ""

type Movie struct {
	ID         uuid.UUID
	Title      string
	Year       int
	Genres     []string
	PosterLink string
	Overview   string

	// Community aggregates shipped with the catalog entry.
	CommunityRating float64
	RaterCount      int
}

func (m Movie) Ref() ContentRef {
	return ContentRef{Type: ContentMovie, ID: m.ID}
}

// PrimaryGenre is the first genre in the normalized list.
func (m Movie) PrimaryGenre() string {
	if len(m.Genres) == 0 {
		return ""
	}
	return m.Genres[0]
}

type Show struct {
	ID         uuid.UUID
	Title      string
	Year       int
	Genres     []string
	PosterLink string
	Overview   string
	Seasons    int

	CommunityRating float64
	RaterCount      int
}

func (s Show) Ref() ContentRef {
	return ContentRef{Type: ContentShow, ID: s.ID}
}

func (s Show) PrimaryGenre() string {
	if len(s.Genres) == 0 {
		return ""
	}
	return s.Genres[0]
}

// SearchResult is a normalized external catalog hit.
type SearchResult struct {
	ID         string
	Type       ContentType
	Title      string
	Year       int
	Genre      string
	PosterPath string
}
