// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reeltaste_sessions_created_total",
		Help: "Sessions seeded from scratch.",
	})

	RatingsUpserted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reeltaste_ratings_upserted_total",
		Help: "Rating upserts by content type.",
	}, []string{"content_type"})

	ReactionsToggled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reeltaste_reactions_toggled_total",
		Help: "Feed reaction toggles.",
	})

	WatchlistMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reeltaste_watchlist_mutations_total",
		Help: "Watchlist adds and removals.",
	}, []string{"op"})

	ScreensPushed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reeltaste_screens_pushed_total",
		Help: "Navigation stack pushes.",
	})

	SpinsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reeltaste_spins_total",
		Help: "Recommendation spins by source.",
	}, []string{"source"})

	ClubMessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reeltaste_club_messages_sent_total",
		Help: "Club chat messages sent.",
	})

	SearchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reeltaste_search_requests_total",
		Help: "External search proxy calls by outcome.",
	}, []string{"outcome"})
)
