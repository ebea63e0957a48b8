// Package infra_tmdb is the HTTP client for the external movie database
// the search screen proxies to.
package infra_tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/reeltaste/core/internal/config"
	"github.com/reeltaste/core/internal/model"
	usecase_catalog "github.com/reeltaste/core/internal/usecase/catalog"
)

// maxResults caps how many upstream hits are normalized per query.
const maxResults = 20

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(cfg config.TMDB) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type searchResponse struct {
	Results []searchHit `json:"results"`
}

type searchHit struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	ReleaseDate  string `json:"release_date"`
	FirstAirDate string `json:"first_air_date"`
	GenreIDs     []int  `json:"genre_ids"`
	PosterPath   string `json:"poster_path"`
}

// Search queries the upstream database and normalizes the first 20 hits
// into the common result shape.
func (c *Client) Search(ctx context.Context, query string, t model.ContentType) ([]model.SearchResult, error) {
	if c.token == "" {
		return nil, usecase_catalog.ErrTokenNotConfigured
	}

	endpoint := "/search/movie"
	if t == model.ContentShow {
		endpoint = "/search/tv"
	}

	u := c.baseURL + endpoint + "?query=" + url.QueryEscape(query) + "&include_adult=false&page=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search upstream returned status: %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]model.SearchResult, 0, maxResults)
	for _, hit := range payload.Results {
		if len(results) == maxResults {
			break
		}
		results = append(results, normalize(hit, t))
	}
	return results, nil
}

func normalize(hit searchHit, t model.ContentType) model.SearchResult {
	title := hit.Title
	date := hit.ReleaseDate
	if t == model.ContentShow {
		title = hit.Name
		date = hit.FirstAirDate
	}

	year := 0
	if len(date) >= 4 {
		year, _ = strconv.Atoi(date[:4])
	}

	genre := ""
	if len(hit.GenreIDs) > 0 {
		genre = genreNames[hit.GenreIDs[0]]
	}

	return model.SearchResult{
		ID:         fmt.Sprintf("%s-%d", t, hit.ID),
		Type:       t,
		Title:      title,
		Year:       year,
		Genre:      genre,
		PosterPath: hit.PosterPath,
	}
}

// genreNames maps the upstream genre ids for both movie and TV catalogs.
var genreNames = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Sci-Fi",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
	10759: "Action",
	10762: "Kids",
	10763: "News",
	10764: "Reality",
	10765: "Sci-Fi",
	10766: "Soap",
	10767: "Talk",
	10768: "War",
}
