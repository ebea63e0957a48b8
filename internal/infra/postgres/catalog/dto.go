package infra_postgres_catalog

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/reeltaste/core/internal/model"
)

type MovieDB struct {
	ID              uuid.UUID      `db:"id"`
	Title           string         `db:"title"`
	Year            int            `db:"year"`
	Genres          pq.StringArray `db:"genres"`
	PosterLink      string         `db:"poster_link"`
	Overview        string         `db:"overview"`
	CommunityRating float64        `db:"community_rating"`
	RaterCount      int            `db:"rater_count"`
}

func (m *MovieDB) ToDomain() model.Movie {
	return model.Movie{
		ID:              m.ID,
		Title:           m.Title,
		Year:            m.Year,
		Genres:          []string(m.Genres),
		PosterLink:      m.PosterLink,
		Overview:        m.Overview,
		CommunityRating: m.CommunityRating,
		RaterCount:      m.RaterCount,
	}
}

func MovieFromDomain(m model.Movie) MovieDB {
	return MovieDB{
		ID:              m.ID,
		Title:           m.Title,
		Year:            m.Year,
		Genres:          pq.StringArray(m.Genres),
		PosterLink:      m.PosterLink,
		Overview:        m.Overview,
		CommunityRating: m.CommunityRating,
		RaterCount:      m.RaterCount,
	}
}

type ShowDB struct {
	ID              uuid.UUID      `db:"id"`
	Title           string         `db:"title"`
	Year            int            `db:"year"`
	Genres          pq.StringArray `db:"genres"`
	PosterLink      string         `db:"poster_link"`
	Overview        string         `db:"overview"`
	Seasons         int            `db:"seasons"`
	CommunityRating float64        `db:"community_rating"`
	RaterCount      int            `db:"rater_count"`
}

func (s *ShowDB) ToDomain() model.Show {
	return model.Show{
		ID:              s.ID,
		Title:           s.Title,
		Year:            s.Year,
		Genres:          []string(s.Genres),
		PosterLink:      s.PosterLink,
		Overview:        s.Overview,
		Seasons:         s.Seasons,
		CommunityRating: s.CommunityRating,
		RaterCount:      s.RaterCount,
	}
}

func ShowFromDomain(s model.Show) ShowDB {
	return ShowDB{
		ID:              s.ID,
		Title:           s.Title,
		Year:            s.Year,
		Genres:          pq.StringArray(s.Genres),
		PosterLink:      s.PosterLink,
		Overview:        s.Overview,
		Seasons:         s.Seasons,
		CommunityRating: s.CommunityRating,
		RaterCount:      s.RaterCount,
	}
}
