package usecase_catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/reeltaste/core/internal/metrics"
	"github.com/reeltaste/core/internal/model"
)

// minQueryLen is the shortest query worth a network round trip.
const minQueryLen = 2

// Search proxies a text query to the external movie database. Queries
// under two characters return an empty list without calling upstream. A
// missing credential propagates; any other upstream failure degrades to
// an empty result set.
func (u *Usecase) Search(ctx context.Context, query string, t model.ContentType) ([]model.SearchResult, error) {
	if len(query) < minQueryLen {
		metrics.SearchRequests.WithLabelValues("short_query").Inc()
		return []model.SearchResult{}, nil
	}
	if !t.Valid() {
		return nil, ErrInvalidInput
	}
	if u.searcher == nil {
		metrics.SearchRequests.WithLabelValues("not_configured").Inc()
		return nil, ErrTokenNotConfigured
	}

	results, err := u.searcher.Search(ctx, query, t)
	if err != nil {
		if errors.Is(err, ErrTokenNotConfigured) {
			metrics.SearchRequests.WithLabelValues("not_configured").Inc()
			return nil, err
		}
		u.logger.Error("search upstream failed",
			slog.String("query", query),
			slog.String("error", err.Error()))
		metrics.SearchRequests.WithLabelValues("upstream_error").Inc()
		return []model.SearchResult{}, nil
	}

	metrics.SearchRequests.WithLabelValues("ok").Inc()
	return results, nil
}
