// Package usecase_catalog owns the in-memory title catalog shared by every
// session. The catalog is reference data: loaded once at startup, from
// Postgres when configured, from the static seed otherwise.
package usecase_catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/reeltaste/core/internal/model"
	"github.com/reeltaste/core/internal/seed"
)

var (
	ErrResourceNotFound = errors.New("no such resource")
	ErrInternal         = errors.New("internal error")
	ErrInvalidInput     = errors.New("invalid input")

	// ErrTokenNotConfigured surfaces a missing upstream credential for
	// the search proxy.
	ErrTokenNotConfigured = errors.New("search token not configured")
)

//go:generate mockery --name=Repository --output=./mocks/catalog/repository --filename=repository.go
type Repository interface {
	LoadMovies(ctx context.Context) ([]model.Movie, error)
	LoadShows(ctx context.Context) ([]model.Show, error)
	StoreMovie(ctx context.Context, m model.Movie) error
	StoreShow(ctx context.Context, s model.Show) error
}

//go:generate mockery --name=Searcher --output=./mocks/catalog/searcher --filename=searcher.go
type Searcher interface {
	Search(ctx context.Context, query string, t model.ContentType) ([]model.SearchResult, error)
}

type Usecase struct {
	mu     sync.RWMutex
	movies []model.Movie
	shows  []model.Show

	repo     Repository
	searcher Searcher
	logger   *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

// New builds the catalog. repo may be nil (seed-only deployments);
// searcher may be nil when no upstream is wired (search then degrades to
// the not-configured error).
func New(repo Repository, searcher Searcher, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		repo:     repo,
		searcher: searcher,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Init fills the catalog from the configured repository, falling back to
// the static seed when no repository is wired or it holds nothing yet.
func (u *Usecase) Init(ctx context.Context) error {
	if u.repo != nil {
		movies, err := u.repo.LoadMovies(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
		shows, err := u.repo.LoadShows(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
		if len(movies) > 0 || len(shows) > 0 {
			u.mu.Lock()
			u.movies, u.shows = movies, shows
			u.mu.Unlock()
			return nil
		}
	}

	data := seed.Load()
	u.mu.Lock()
	u.movies, u.shows = data.Movies, data.Shows
	u.mu.Unlock()
	return nil
}

func (u *Usecase) Movies() []model.Movie {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]model.Movie, len(u.movies))
	copy(out, u.movies)
	return out
}

func (u *Usecase) Shows() []model.Show {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]model.Show, len(u.shows))
	copy(out, u.shows)
	return out
}

func (u *Usecase) MovieByID(id uuid.UUID) (model.Movie, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, m := range u.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Movie{}, ErrResourceNotFound
}

func (u *Usecase) ShowByID(id uuid.UUID) (model.Show, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, s := range u.shows {
		if s.ID == id {
			return s, nil
		}
	}
	return model.Show{}, ErrResourceNotFound
}

// TitleFor resolves the display title and poster of any catalog ref.
func (u *Usecase) TitleFor(ref model.ContentRef) (title, poster string, err error) {
	switch ref.Type {
	case model.ContentMovie:
		m, err := u.MovieByID(ref.ID)
		if err != nil {
			return "", "", err
		}
		return m.Title, m.PosterLink, nil
	case model.ContentShow:
		s, err := u.ShowByID(ref.ID)
		if err != nil {
			return "", "", err
		}
		return s.Title, s.PosterLink, nil
	}
	return "", "", fmt.Errorf("%w: unknown content type %q", ErrInvalidInput, ref.Type)
}

// UploadMovie upserts a catalog entry, in memory and through the
// repository when one is wired.
func (u *Usecase) UploadMovie(ctx context.Context, m model.Movie) error {
	if m.Title == model.EmptyTitle {
		return fmt.Errorf("%w: movie title cannot be empty", ErrInvalidInput)
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if u.repo != nil {
		if err := u.repo.StoreMovie(ctx, m); err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	for i, existing := range u.movies {
		if existing.ID == m.ID {
			u.movies[i] = m
			return nil
		}
	}
	u.movies = append(u.movies, m)
	return nil
}

func (u *Usecase) UploadShow(ctx context.Context, s model.Show) error {
	if s.Title == model.EmptyTitle {
		return fmt.Errorf("%w: show title cannot be empty", ErrInvalidInput)
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	if u.repo != nil {
		if err := u.repo.StoreShow(ctx, s); err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	for i, existing := range u.shows {
		if existing.ID == s.ID {
			u.shows[i] = s
			return nil
		}
	}
	u.shows = append(u.shows, s)
	return nil
}
