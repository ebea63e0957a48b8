// Package usecase_session implements the per-device application state hub:
// one Session owns every mutable collection of the signed-in device
// (ratings, watchlist, feed, clubs, notifications, navigation stack) and is
// the only mutation entry point the delivery layer talks to.
package usecase_session

import (
	"errors"
	"sync"

	"github.com/reeltaste/core/internal/model"
	"github.com/reeltaste/core/internal/seed"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Session struct {
	mu sync.RWMutex

	id    string
	user  model.User
	users []model.User
	theme string

	movieRatings  []model.MovieRating
	showRatings   []model.ShowRating
	watchlist     []model.WatchlistItem
	feed          []model.FeedActivity
	clubs         []model.Club
	notifications []model.Notification
	stack         []model.Screen
}

// New builds a session from a fresh copy of the seed dataset.
func New(id string, data *seed.Data) *Session {
	s := &Session{
		id:            id,
		users:         data.Users,
		theme:         "dark",
		movieRatings:  data.MovieRatings,
		showRatings:   data.ShowRatings,
		watchlist:     data.Watchlist,
		feed:          data.Feed,
		clubs:         data.Clubs,
		notifications: data.Notifications,
	}
	for _, u := range data.Users {
		if u.ID == data.DefaultUserID {
			s.user = u
			break
		}
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

// User returns the signed-in identity.
func (s *Session) User() model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// UserByID resolves any known identity, the signed-in user included.
func (s *Session) UserByID(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID.String() == id {
			return u, true
		}
	}
	return model.User{}, false
}

// Friends returns the signed-in user's friend records joined with their
// profiles, keeping the seeded taste-match ordering.
func (s *Session) Friends() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	friends := make([]model.User, 0, len(s.user.Friends))
	for _, f := range s.user.Friends {
		for _, u := range s.users {
			if u.ID == f.UserID {
				friends = append(friends, u)
				break
			}
		}
	}
	return friends
}

func (s *Session) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Session) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
}

// ReplaceUser swaps the signed-in identity. Used by login, signup and
// logout; the rest of the session state stays untouched.
func (s *Session) ReplaceUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = u
	for i, known := range s.users {
		if known.ID == u.ID {
			s.users[i] = u
			return
		}
	}
	s.users = append(s.users, u)
}
