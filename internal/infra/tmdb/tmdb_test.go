package infra_tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/reeltaste/core/internal/config"
	"github.com/reeltaste/core/internal/model"
	usecase_catalog "github.com/reeltaste/core/internal/usecase/catalog"
)

type TMDBClientSuite struct {
	suite.Suite
}

func newServerClient(t provider.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(config.TMDB{BaseURL: server.URL, Token: "test-token"})
}

func (suite *TMDBClientSuite) TestMissingToken(t provider.T) {
	t.Parallel()

	client := New(config.TMDB{BaseURL: "http://localhost"})

	_, err := client.Search(context.Background(), "dune", model.ContentMovie)

	assert.ErrorIs(t, err, usecase_catalog.ErrTokenNotConfigured)
}

func (suite *TMDBClientSuite) TestMovieSearch(t provider.T) {
	t.Parallel()

	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "dune part two", r.URL.Query().Get("query"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"id":693134,"title":"Dune: Part Two","release_date":"2024-02-27","genre_ids":[878,12],"poster_path":"/dune2.jpg"},
			{"id":438631,"title":"Dune","release_date":"2021-09-15","genre_ids":[]}
		]}`))
	})

	results, err := client.Search(context.Background(), "dune part two", model.ContentMovie)

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, model.SearchResult{
		ID:         "movie-693134",
		Type:       model.ContentMovie,
		Title:      "Dune: Part Two",
		Year:       2024,
		Genre:      "Sci-Fi",
		PosterPath: "/dune2.jpg",
	}, results[0])
	assert.Empty(t, results[1].Genre)
}

func (suite *TMDBClientSuite) TestShowSearch(t provider.T) {
	t.Parallel()

	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/tv", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"id":95396,"name":"Severance","first_air_date":"2022-02-18","genre_ids":[18,9648]}
		]}`))
	})

	results, err := client.Search(context.Background(), "severance", model.ContentShow)

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Severance", results[0].Title)
	assert.Equal(t, 2022, results[0].Year)
	assert.Equal(t, "Drama", results[0].Genre)
	assert.Equal(t, model.ContentShow, results[0].Type)
}

func (suite *TMDBClientSuite) TestUpstreamFailures(t provider.T) {
	t.Parallel()

	t.Run("Non-200 status is an error", func(t provider.T) {
		t.Parallel()
		client := newServerClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := client.Search(context.Background(), "dune", model.ContentMovie)

		assert.ErrorContains(t, err, "429")
	})

	t.Run("Malformed body is an error", func(t provider.T) {
		t.Parallel()
		client := newServerClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		})

		_, err := client.Search(context.Background(), "dune", model.ContentMovie)

		assert.ErrorContains(t, err, "decode")
	})
}

func (suite *TMDBClientSuite) TestResultCap(t provider.T) {
	t.Parallel()

	client := newServerClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[` + manyHits(25) + `]}`))
	})

	results, err := client.Search(context.Background(), "dune", model.ContentMovie)

	assert.NoError(t, err)
	assert.Len(t, results, maxResults)
}

func manyHits(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += `{"id":1,"title":"Filler","release_date":"2020-01-01"}`
	}
	return out
}

func TestTMDBClientSuite(t *testing.T) {
	suite.RunSuite(t, new(TMDBClientSuite))
}
