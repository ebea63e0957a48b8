package infra_postgres_catalog

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/reeltaste/core/internal/model"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) StoreMovie(ctx context.Context, m model.Movie) error {
	movieDB := MovieFromDomain(m)

	query := `
		INSERT INTO movies (id, title, year, genres, poster_link, overview, community_rating, rater_count)
		VALUES (:id, :title, :year, :genres, :poster_link, :overview, :community_rating, :rater_count)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			genres = EXCLUDED.genres,
			poster_link = EXCLUDED.poster_link,
			overview = EXCLUDED.overview,
			community_rating = EXCLUDED.community_rating,
			rater_count = EXCLUDED.rater_count
	`

	if _, err := r.db.NamedExecContext(ctx, query, movieDB); err != nil {
		return fmt.Errorf("failed to store movie: %w", err)
	}

	return nil
}

func (r *Repository) StoreShow(ctx context.Context, s model.Show) error {
	showDB := ShowFromDomain(s)

	query := `
		INSERT INTO shows (id, title, year, genres, poster_link, overview, seasons, community_rating, rater_count)
		VALUES (:id, :title, :year, :genres, :poster_link, :overview, :seasons, :community_rating, :rater_count)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			genres = EXCLUDED.genres,
			poster_link = EXCLUDED.poster_link,
			overview = EXCLUDED.overview,
			seasons = EXCLUDED.seasons,
			community_rating = EXCLUDED.community_rating,
			rater_count = EXCLUDED.rater_count
	`

	if _, err := r.db.NamedExecContext(ctx, query, showDB); err != nil {
		return fmt.Errorf("failed to store show: %w", err)
	}

	return nil
}

func (r *Repository) LoadMovies(ctx context.Context) ([]model.Movie, error) {
	query := `
		SELECT id, title, year, genres, poster_link, overview, community_rating, rater_count
		FROM movies
	`

	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query); err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	movies := make([]model.Movie, len(moviesDB))
	for i, movieDB := range moviesDB {
		movies[i] = movieDB.ToDomain()
	}

	return movies, nil
}

func (r *Repository) LoadShows(ctx context.Context) ([]model.Show, error) {
	query := `
		SELECT id, title, year, genres, poster_link, overview, seasons, community_rating, rater_count
		FROM shows
	`

	var showsDB []ShowDB
	if err := r.db.SelectContext(ctx, &showsDB, query); err != nil {
		return nil, fmt.Errorf("failed to query shows: %w", err)
	}

	shows := make([]model.Show, len(showsDB))
	for i, showDB := range showsDB {
		shows[i] = showDB.ToDomain()
	}

	return shows, nil
}
