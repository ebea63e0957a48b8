package usecase_session

import (
	"time"

	"github.com/google/uuid"
	"github.com/reeltaste/core/internal/metrics"
	"github.com/reeltaste/core/internal/model"
)

// AddMovieRating upserts by movie id: an existing rating is replaced in
// place, keeping its list position and identity, with the later values
// winning. A fresh rating is appended. Either way the movie drops off the
// watchlist. Returns the stored rating and whether it was newly created.
func (s *Session) AddMovieRating(r model.MovieRating) (model.MovieRating, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.RatedAt.IsZero() {
		r.RatedAt = time.Now()
	}
	metrics.RatingsUpserted.WithLabelValues(string(model.ContentMovie)).Inc()
	s.dropFromWatchlist(model.ContentRef{Type: model.ContentMovie, ID: r.MovieID})

	for i, existing := range s.movieRatings {
		if existing.MovieID == r.MovieID {
			r.ID = existing.ID
			s.movieRatings[i] = r
			return r, false
		}
	}
	s.movieRatings = append(s.movieRatings, r)
	return r, true
}

// AddShowRating mirrors AddMovieRating for shows, per-season scores
// included.
func (s *Session) AddShowRating(r model.ShowRating) (model.ShowRating, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.RatedAt.IsZero() {
		r.RatedAt = time.Now()
	}
	metrics.RatingsUpserted.WithLabelValues(string(model.ContentShow)).Inc()
	s.dropFromWatchlist(model.ContentRef{Type: model.ContentShow, ID: r.ShowID})

	for i, existing := range s.showRatings {
		if existing.ShowID == r.ShowID {
			r.ID = existing.ID
			// A replace without season scores keeps the ones already
			// tracked.
			if r.SeasonScores == nil {
				r.SeasonScores = existing.SeasonScores
			}
			s.showRatings[i] = r
			return r, false
		}
	}
	s.showRatings = append(s.showRatings, r)
	return r, true
}

// DeleteMovieRating removes by rating id. Unknown ids are a no-op.
func (s *Session) DeleteMovieRating(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.movieRatings {
		if r.ID == id {
			s.movieRatings = append(s.movieRatings[:i], s.movieRatings[i+1:]...)
			return
		}
	}
}

func (s *Session) DeleteShowRating(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.showRatings {
		if r.ID == id {
			s.showRatings = append(s.showRatings[:i], s.showRatings[i+1:]...)
			return
		}
	}
}

// ToggleMovieFavorite flips the favorite flag on the rating with the given
// id and reports whether a rating was found.
func (s *Session) ToggleMovieFavorite(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.movieRatings {
		if s.movieRatings[i].ID == id {
			s.movieRatings[i].Favorite = !s.movieRatings[i].Favorite
			return true
		}
	}
	return false
}

func (s *Session) ToggleShowFavorite(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.showRatings {
		if s.showRatings[i].ID == id {
			s.showRatings[i].Favorite = !s.showRatings[i].Favorite
			return true
		}
	}
	return false
}

// SetSeasonScore scores a single season (1-based) on an existing show
// rating, growing the season list as needed.
func (s *Session) SetSeasonScore(ratingID uuid.UUID, season int, score float64) bool {
	if season < 1 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.showRatings {
		if s.showRatings[i].ID != ratingID {
			continue
		}
		for len(s.showRatings[i].SeasonScores) < season {
			s.showRatings[i].SeasonScores = append(s.showRatings[i].SeasonScores, 0)
		}
		s.showRatings[i].SeasonScores[season-1] = score
		return true
	}
	return false
}

func (s *Session) MovieRatings() []model.MovieRating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.MovieRating, len(s.movieRatings))
	copy(out, s.movieRatings)
	return out
}

func (s *Session) ShowRatings() []model.ShowRating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ShowRating, len(s.showRatings))
	copy(out, s.showRatings)
	return out
}

func (s *Session) MovieRatingFor(movieID uuid.UUID) (model.MovieRating, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.movieRatings {
		if r.MovieID == movieID {
			return r, true
		}
	}
	return model.MovieRating{}, false
}

func (s *Session) ShowRatingFor(showID uuid.UUID) (model.ShowRating, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.showRatings {
		if r.ShowID == showID {
			return r, true
		}
	}
	return model.ShowRating{}, false
}
