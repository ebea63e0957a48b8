package usecase_session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/reeltaste/core/internal/model"
	"github.com/reeltaste/core/internal/seed"
	"github.com/stretchr/testify/assert"
)

type SessionHubSuite struct {
	suite.Suite
}

func seededSession() *Session {
	return New(uuid.New().String(), seed.Load())
}

func (suite *SessionHubSuite) TestMovieRatingUpsert(t provider.T) {
	t.Parallel()

	t.Run("Should append fresh rating", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		before := len(s.MovieRatings())
		movieID := uuid.New()

		r, created := s.AddMovieRating(model.MovieRating{MovieID: movieID, Score: 8.0})

		assert.True(t, created)
		assert.NotEqual(t, uuid.Nil, r.ID)
		assert.False(t, r.RatedAt.IsZero())
		assert.Len(t, s.MovieRatings(), before+1)
	})

	t.Run("Should replace in place keeping position and identity", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		ratings := s.MovieRatings()
		target := ratings[0]

		r, created := s.AddMovieRating(model.MovieRating{MovieID: target.MovieID, Score: 3.5, Review: "rewatch hit different"})

		assert.False(t, created)
		assert.Equal(t, target.ID, r.ID)

		after := s.MovieRatings()
		assert.Len(t, after, len(ratings))
		assert.Equal(t, target.ID, after[0].ID)
		assert.Equal(t, 3.5, after[0].Score)
		assert.Equal(t, "rewatch hit different", after[0].Review)
	})

	t.Run("Should drop rated title from watchlist", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		items := s.Watchlist()
		assert.NotEmpty(t, items)
		target := items[0]
		assert.Equal(t, model.ContentMovie, target.Ref.Type)

		_, created := s.AddMovieRating(model.MovieRating{MovieID: target.Ref.ID, Score: 9.0})

		assert.True(t, created)
		assert.False(t, s.IsInWatchlist(target.Ref.Type, target.Ref.ID))
	})
}

func (suite *SessionHubSuite) TestShowSeasonScores(t provider.T) {
	t.Parallel()

	t.Run("Should grow season list to the scored season", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		r, _ := s.AddShowRating(model.ShowRating{ShowID: uuid.New(), Score: 7.0})

		ok := s.SetSeasonScore(r.ID, 3, 8.5)

		assert.True(t, ok)
		stored, found := s.ShowRatingFor(r.ShowID)
		assert.True(t, found)
		assert.Equal(t, []float64{0, 0, 8.5}, stored.SeasonScores)
	})

	t.Run("Should keep season scores across an overall re-rate", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		showID := uuid.New()
		r, _ := s.AddShowRating(model.ShowRating{ShowID: showID, Score: 7.0})
		assert.True(t, s.SetSeasonScore(r.ID, 2, 8.5))

		_, created := s.AddShowRating(model.ShowRating{ShowID: showID, Score: 9.0})

		assert.False(t, created)
		stored, found := s.ShowRatingFor(showID)
		assert.True(t, found)
		assert.Equal(t, 9.0, stored.Score)
		assert.Equal(t, []float64{0, 8.5}, stored.SeasonScores)
	})

	t.Run("Should let an explicit season list win the replace", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		showID := uuid.New()
		r, _ := s.AddShowRating(model.ShowRating{ShowID: showID, Score: 7.0})
		assert.True(t, s.SetSeasonScore(r.ID, 1, 6.0))

		s.AddShowRating(model.ShowRating{ShowID: showID, Score: 8.0, SeasonScores: []float64{7.5, 8.5}})

		stored, _ := s.ShowRatingFor(showID)
		assert.Equal(t, []float64{7.5, 8.5}, stored.SeasonScores)
	})

	t.Run("Should reject season zero", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		r, _ := s.AddShowRating(model.ShowRating{ShowID: uuid.New(), Score: 7.0})

		assert.False(t, s.SetSeasonScore(r.ID, 0, 5.0))
	})

	t.Run("Should report unknown rating", func(t provider.T) {
		t.Parallel()
		s := seededSession()

		assert.False(t, s.SetSeasonScore(uuid.New(), 1, 5.0))
	})
}

func (suite *SessionHubSuite) TestToggleReaction(t provider.T) {
	t.Parallel()

	t.Run("Should add then remove the same reaction", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		a := s.PublishActivity(model.FeedActivity{Score: 8.0})
		me := s.User().ID

		s.ToggleReaction(a.ID, model.ReactionFire)
		got, _ := s.Activity(a.ID)
		assert.True(t, got.HasReaction(model.ReactionFire, me))

		s.ToggleReaction(a.ID, model.ReactionFire)
		got, _ = s.Activity(a.ID)
		assert.False(t, got.HasReaction(model.ReactionFire, me))
	})

	t.Run("Should keep kinds independent", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		a := s.PublishActivity(model.FeedActivity{Score: 8.0})
		me := s.User().ID

		s.ToggleReaction(a.ID, model.ReactionLike)
		s.ToggleReaction(a.ID, model.ReactionClap)

		got, _ := s.Activity(a.ID)
		assert.True(t, got.HasReaction(model.ReactionLike, me))
		assert.True(t, got.HasReaction(model.ReactionClap, me))
	})

	t.Run("Should ignore unknown activity", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		feedBefore := s.Feed()

		s.ToggleReaction(uuid.New(), model.ReactionSad)

		assert.Equal(t, feedBefore, s.Feed())
	})
}

func (suite *SessionHubSuite) TestFeedOrdering(t provider.T) {
	t.Parallel()

	s := seededSession()
	feed := s.Feed()
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i-1].PostedAt.Before(feed[i].PostedAt))
	}

	published := s.PublishActivity(model.FeedActivity{Score: 6.0})
	assert.Equal(t, s.User().ID, published.UserID)
	assert.Equal(t, published.ID, s.Feed()[0].ID)
}

func (suite *SessionHubSuite) TestNavigationStack(t provider.T) {
	t.Parallel()

	t.Run("Push then pop is the inverse", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		s.PushScreen(model.SearchScreen{Query: "dune"})
		s.PushScreen(model.MovieDetailScreen{MovieID: uuid.New()})

		s.PopScreen()

		stack := s.Stack()
		assert.Len(t, stack, 1)
		assert.Equal(t, model.ScreenSearch, stack[0].Kind())
	})

	t.Run("Pop on empty stack is a no-op", func(t provider.T) {
		t.Parallel()
		s := seededSession()

		s.PopScreen()

		assert.Empty(t, s.Stack())
	})

	t.Run("Same destination may repeat", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		id := uuid.New()
		s.PushScreen(model.MovieDetailScreen{MovieID: id})
		s.PushScreen(model.ProfileScreen{UserID: uuid.New()})
		s.PushScreen(model.MovieDetailScreen{MovieID: id})

		assert.Len(t, s.Stack(), 3)
	})

	t.Run("Clear empties the stack", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		s.PushScreen(model.SettingsScreen{})

		s.ClearStack()

		assert.Empty(t, s.Stack())
	})
}

func (suite *SessionHubSuite) TestWatchlist(t provider.T) {
	t.Parallel()

	t.Run("Should coalesce duplicate adds", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		ref := model.ContentRef{Type: model.ContentShow, ID: uuid.New()}

		first := s.AddToWatchlist(model.WatchlistItem{Ref: ref, Title: "Dark"})
		second := s.AddToWatchlist(model.WatchlistItem{Ref: ref, Title: "Dark"})

		assert.Equal(t, first.ID, second.ID)

		count := 0
		for _, item := range s.Watchlist() {
			if item.Ref == ref {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("Should remove by item id", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		item := s.AddToWatchlist(model.WatchlistItem{
			Ref: model.ContentRef{Type: model.ContentMovie, ID: uuid.New()},
		})

		s.RemoveFromWatchlist(item.ID)

		assert.False(t, s.IsInWatchlist(item.Ref.Type, item.Ref.ID))
	})

	t.Run("Membership matches type and id", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		id := uuid.New()
		s.AddToWatchlist(model.WatchlistItem{
			Ref: model.ContentRef{Type: model.ContentMovie, ID: id},
		})

		assert.True(t, s.IsInWatchlist(model.ContentMovie, id))
		assert.False(t, s.IsInWatchlist(model.ContentShow, id))
	})
}

func (suite *SessionHubSuite) TestNotifications(t provider.T) {
	t.Parallel()

	t.Run("Unseen count shrinks as notifications are read", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		unseen := s.UnseenCount()
		assert.Greater(t, unseen, 0)

		for _, n := range s.Notifications() {
			if !n.Seen {
				s.MarkNotificationSeen(n.ID)
				break
			}
		}
		assert.Equal(t, unseen-1, s.UnseenCount())

		s.MarkAllNotificationsSeen()
		assert.Equal(t, 0, s.UnseenCount())
	})
}

func (suite *SessionHubSuite) TestProfile(t provider.T) {
	t.Parallel()

	t.Run("Empty fields keep current values", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		before := s.User()

		after := s.UpdateProfile(ProfileUpdate{Bio: "new bio"})

		assert.Equal(t, before.DisplayName, after.DisplayName)
		assert.Equal(t, "new bio", after.Bio)
	})

	t.Run("Edits propagate to the known-users list", func(t provider.T) {
		t.Parallel()
		s := seededSession()
		me := s.User()

		s.UpdateProfile(ProfileUpdate{DisplayName: "Someone Else"})

		looked, ok := s.UserByID(me.ID.String())
		assert.True(t, ok)
		assert.Equal(t, "Someone Else", looked.DisplayName)
	})

	t.Run("Mount rushmore caps at four", func(t provider.T) {
		t.Parallel()
		s := seededSession()

		refs := make([]model.ContentRef, model.MaxMountRushmore+1)
		for i := range refs {
			refs[i] = model.ContentRef{Type: model.ContentMovie, ID: uuid.New()}
		}

		err := s.SetMountRushmore(refs)
		assert.ErrorIs(t, err, ErrInvalidInput)

		assert.NoError(t, s.SetMountRushmore(refs[:model.MaxMountRushmore]))
		assert.Len(t, s.User().MountRushmore, model.MaxMountRushmore)
	})
}

func (suite *SessionHubSuite) TestManager(t provider.T) {
	t.Parallel()

	t.Run("Obtain is idempotent per token", func(t provider.T) {
		t.Parallel()
		m := NewManager()
		token := uuid.New().String()

		first := m.Obtain(token)
		second := m.Obtain(token)

		assert.Same(t, first, second)
	})

	t.Run("Sessions are isolated between tokens", func(t provider.T) {
		t.Parallel()
		m := NewManager()
		a := m.Obtain(uuid.New().String())
		b := m.Obtain(uuid.New().String())

		a.AddMovieRating(model.MovieRating{MovieID: uuid.New(), Score: 9.0})

		assert.Equal(t, len(b.MovieRatings())+1, len(a.MovieRatings()))
	})

	t.Run("Drop forgets the session", func(t provider.T) {
		t.Parallel()
		m := NewManager()
		token := uuid.New().String()
		old := m.Obtain(token)

		m.Drop(token)

		fresh := m.Obtain(token)
		assert.NotSame(t, old, fresh)
	})
}

func TestSessionHubSuite(t *testing.T) {
	suite.RunSuite(t, new(SessionHubSuite))
}
