package usecase_session

import (
	"time"

	"github.com/google/uuid"
	"github.com/reeltaste/core/internal/metrics"
	"github.com/reeltaste/core/internal/model"
)

// AddToWatchlist saves a title for later. Adds are coalesced by content
// ref: a second add of the same title returns the existing item untouched.
func (s *Session) AddToWatchlist(item model.WatchlistItem) model.WatchlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.watchlist {
		if existing.Ref == item.Ref {
			return existing
		}
	}

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}
	s.watchlist = append(s.watchlist, item)
	metrics.WatchlistMutations.WithLabelValues("add").Inc()
	return item
}

// RemoveFromWatchlist filters out by item id. Unknown ids are a no-op.
func (s *Session) RemoveFromWatchlist(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.watchlist {
		if item.ID == id {
			s.watchlist = append(s.watchlist[:i], s.watchlist[i+1:]...)
			metrics.WatchlistMutations.WithLabelValues("remove").Inc()
			return
		}
	}
}

// IsInWatchlist matches on both content type and id.
func (s *Session) IsInWatchlist(t model.ContentType, id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.watchlist {
		if item.Ref.Type == t && item.Ref.ID == id {
			return true
		}
	}
	return false
}

func (s *Session) Watchlist() []model.WatchlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.WatchlistItem, len(s.watchlist))
	copy(out, s.watchlist)
	return out
}

// dropFromWatchlist runs under the caller's lock. Rating a title removes
// its saved-for-later entry.
func (s *Session) dropFromWatchlist(ref model.ContentRef) {
	for i, item := range s.watchlist {
		if item.Ref == ref {
			s.watchlist = append(s.watchlist[:i], s.watchlist[i+1:]...)
			return
		}
	}
}
