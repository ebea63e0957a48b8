package usecase_catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reeltaste/core/internal/model"
	"github.com/reeltaste/core/internal/seed"
	repo_mocks "github.com/reeltaste/core/internal/usecase/catalog/mocks/catalog/repository"
	searcher_mocks "github.com/reeltaste/core/internal/usecase/catalog/mocks/catalog/searcher"
)

type UsecaseCatalogSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	repository *repo_mocks.Repository
	searcher   *searcher_mocks.Searcher
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewRepository(t)
	searcher := searcher_mocks.NewSearcher(t)

	return &resources{
		usecase:    New(repository, searcher),
		repository: repository,
		searcher:   searcher,
		ctx:        context.Background(),
	}
}

func someMovie(title string) model.Movie {
	return model.Movie{
		ID:     uuid.New(),
		Title:  title,
		Year:   2024,
		Genres: []string{"Drama"},
	}
}

func (suite *UsecaseCatalogSuite) TestInit(t provider.T) {
	t.Parallel()

	t.Run("Should prefer repository rows over the seed", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		stored := someMovie("Repository Movie")
		r.repository.On("LoadMovies", r.ctx).Return([]model.Movie{stored}, nil).Once()
		r.repository.On("LoadShows", r.ctx).Return([]model.Show{}, nil).Once()

		err := r.usecase.Init(r.ctx)

		assert.NoError(t, err)
		assert.Equal(t, []model.Movie{stored}, r.usecase.Movies())
		assert.Empty(t, r.usecase.Shows())
	})

	t.Run("Should fall back to the seed when the repository is empty", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repository.On("LoadMovies", r.ctx).Return([]model.Movie{}, nil).Once()
		r.repository.On("LoadShows", r.ctx).Return([]model.Show{}, nil).Once()

		err := r.usecase.Init(r.ctx)

		assert.NoError(t, err)
		assert.Equal(t, seed.Load().Movies, r.usecase.Movies())
		assert.Equal(t, seed.Load().Shows, r.usecase.Shows())
	})

	t.Run("Should load the seed when no repository is wired", func(t provider.T) {
		t.Parallel()
		usecase := New(nil, nil)

		err := usecase.Init(context.Background())

		assert.NoError(t, err)
		assert.NotEmpty(t, usecase.Movies())
		assert.NotEmpty(t, usecase.Shows())
	})

	t.Run("Should wrap repository failure", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repository.On("LoadMovies", r.ctx).Return(nil, errors.New("connection refused")).Once()

		err := r.usecase.Init(r.ctx)

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (suite *UsecaseCatalogSuite) TestLookup(t provider.T) {
	t.Parallel()

	usecase := New(nil, nil)
	_ = usecase.Init(context.Background())
	movies, shows := usecase.Movies(), usecase.Shows()

	t.Run("Should find a movie by id", func(t provider.T) {
		m, err := usecase.MovieByID(movies[0].ID)

		assert.NoError(t, err)
		assert.Equal(t, movies[0].Title, m.Title)
	})

	t.Run("Should report a missing movie", func(t provider.T) {
		_, err := usecase.MovieByID(uuid.New())

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("Should report a missing show", func(t provider.T) {
		_, err := usecase.ShowByID(uuid.New())

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("Should resolve titles for both content types", func(t provider.T) {
		title, _, err := usecase.TitleFor(movies[0].Ref())
		assert.NoError(t, err)
		assert.Equal(t, movies[0].Title, title)

		title, _, err = usecase.TitleFor(shows[0].Ref())
		assert.NoError(t, err)
		assert.Equal(t, shows[0].Title, title)
	})

	t.Run("Should reject an unknown content type", func(t provider.T) {
		_, _, err := usecase.TitleFor(model.ContentRef{Type: "podcast", ID: uuid.New()})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func (suite *UsecaseCatalogSuite) TestUpload(t provider.T) {
	t.Parallel()

	t.Run("Should store and expose a new movie", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		m := someMovie("Fresh Upload")
		r.repository.On("StoreMovie", r.ctx, m).Return(nil).Once()

		err := r.usecase.UploadMovie(r.ctx, m)

		assert.NoError(t, err)
		got, err := r.usecase.MovieByID(m.ID)
		assert.NoError(t, err)
		assert.Equal(t, m.Title, got.Title)
	})

	t.Run("Should replace an existing movie in place", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		m := someMovie("First Cut")
		r.repository.On("StoreMovie", r.ctx, mock.AnythingOfType("model.Movie")).Return(nil).Twice()

		assert.NoError(t, r.usecase.UploadMovie(r.ctx, m))
		m.Title = "Director's Cut"
		assert.NoError(t, r.usecase.UploadMovie(r.ctx, m))

		assert.Len(t, r.usecase.Movies(), 1)
		got, _ := r.usecase.MovieByID(m.ID)
		assert.Equal(t, "Director's Cut", got.Title)
	})

	t.Run("Should reject an empty title without touching the repository", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		err := r.usecase.UploadMovie(r.ctx, model.Movie{ID: uuid.New()})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Should wrap repository failure", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		m := someMovie("Unlucky")
		r.repository.On("StoreMovie", r.ctx, m).Return(errors.New("disk full")).Once()

		err := r.usecase.UploadMovie(r.ctx, m)

		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("Should upsert shows symmetrically", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		s := model.Show{ID: uuid.New(), Title: "Uploaded Show", Seasons: 2}
		r.repository.On("StoreShow", r.ctx, s).Return(nil).Once()

		err := r.usecase.UploadShow(r.ctx, s)

		assert.NoError(t, err)
		got, err := r.usecase.ShowByID(s.ID)
		assert.NoError(t, err)
		assert.Equal(t, s.Title, got.Title)
	})
}

func (suite *UsecaseCatalogSuite) TestSearch(t provider.T) {
	t.Parallel()

	t.Run("Should skip upstream for short queries", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		results, err := r.usecase.Search(r.ctx, "a", model.ContentMovie)

		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Should reject an invalid content type", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		_, err := r.usecase.Search(r.ctx, "dune", model.ContentType("podcast"))

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Should degrade to not-configured without a searcher", func(t provider.T) {
		t.Parallel()
		usecase := New(nil, nil)

		_, err := usecase.Search(context.Background(), "dune", model.ContentMovie)

		assert.ErrorIs(t, err, ErrTokenNotConfigured)
	})

	t.Run("Should propagate a missing credential", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.searcher.On("Search", r.ctx, "dune", model.ContentMovie).Return(nil, ErrTokenNotConfigured).Once()

		_, err := r.usecase.Search(r.ctx, "dune", model.ContentMovie)

		assert.ErrorIs(t, err, ErrTokenNotConfigured)
	})

	t.Run("Should swallow other upstream failures", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.searcher.On("Search", r.ctx, "dune", model.ContentMovie).Return(nil, errors.New("upstream 500")).Once()

		results, err := r.usecase.Search(r.ctx, "dune", model.ContentMovie)

		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Should return normalized hits", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		hits := []model.SearchResult{{ID: "693134", Type: model.ContentMovie, Title: "Dune: Part Two", Year: 2024}}
		r.searcher.On("Search", r.ctx, "dune", model.ContentMovie).Return(hits, nil).Once()

		results, err := r.usecase.Search(r.ctx, "dune", model.ContentMovie)

		assert.NoError(t, err)
		assert.Equal(t, hits, results)
	})
}

func TestUsecaseCatalogSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseCatalogSuite))
}
