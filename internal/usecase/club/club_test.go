package usecase_club

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/reeltaste/core/internal/model"
	"github.com/reeltaste/core/internal/seed"
	usecase_session "github.com/reeltaste/core/internal/usecase/session"
	"github.com/stretchr/testify/assert"
)

type ClubSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	session *usecase_session.Session
	clubID  uuid.UUID
}

func initResources() *resources {
	s := usecase_session.New(uuid.New().String(), seed.Load())
	uc := New()
	club := uc.CreateClub(s, "Finale Watchers", "Predictions or it didn't happen.")

	return &resources{
		usecase: uc,
		session: s,
		clubID:  club.ID,
	}
}

func someRef() model.ContentRef {
	return model.ContentRef{Type: model.ContentShow, ID: uuid.New()}
}

func (suite *ClubSuite) TestMessages(t provider.T) {
	t.Parallel()

	t.Run("Should append message with author and reactions map", func(t provider.T) {
		t.Parallel()
		r := initResources()

		msg, ok := r.usecase.SendMessage(r.session, r.clubID, "finale tonight?", nil, false)

		assert.True(t, ok)
		assert.Equal(t, r.session.User().ID, msg.AuthorID)
		assert.NotNil(t, msg.Reactions)

		club, _ := r.session.Club(r.clubID)
		assert.Len(t, club.Messages, 1)
	})

	t.Run("Should carry content ref and spoiler flag", func(t provider.T) {
		t.Parallel()
		r := initResources()
		ref := someRef()

		msg, ok := r.usecase.SendMessage(r.session, r.clubID, "THAT ending", &ref, true)

		assert.True(t, ok)
		assert.True(t, msg.Spoiler)
		assert.Equal(t, &ref, msg.Ref)
	})

	t.Run("Should report unknown club", func(t provider.T) {
		t.Parallel()
		r := initResources()

		_, ok := r.usecase.SendMessage(r.session, uuid.New(), "hello?", nil, false)

		assert.False(t, ok)
	})
}

func (suite *ClubSuite) TestMessageReactions(t provider.T) {
	t.Parallel()

	t.Run("Toggle adds then removes", func(t provider.T) {
		t.Parallel()
		r := initResources()
		msg, _ := r.usecase.SendMessage(r.session, r.clubID, "hot take incoming", nil, false)
		me := r.session.User().ID

		updated, ok := r.usecase.ToggleMessageReaction(r.session, r.clubID, msg.ID, "🔥")
		assert.True(t, ok)
		assert.Contains(t, updated.Reactions["🔥"], me)

		updated, ok = r.usecase.ToggleMessageReaction(r.session, r.clubID, msg.ID, "🔥")
		assert.True(t, ok)
		assert.NotContains(t, updated.Reactions, "🔥")
	})

	t.Run("Should report unknown message", func(t provider.T) {
		t.Parallel()
		r := initResources()

		_, ok := r.usecase.ToggleMessageReaction(r.session, r.clubID, uuid.New(), "🔥")

		assert.False(t, ok)
	})
}

func (suite *ClubSuite) TestMembership(t provider.T) {
	t.Parallel()

	t.Run("Creator is the first member", func(t provider.T) {
		t.Parallel()
		r := initResources()

		club, _ := r.session.Club(r.clubID)
		assert.Equal(t, []uuid.UUID{r.session.User().ID}, club.Members)
	})

	t.Run("Joining twice is a no-op", func(t provider.T) {
		t.Parallel()
		r := initResources()

		club, ok := r.usecase.JoinClub(r.session, r.clubID)
		assert.True(t, ok)
		assert.Len(t, club.Members, 1)
	})
}

func (suite *ClubSuite) TestPolls(t provider.T) {
	t.Parallel()

	t.Run("Revote moves the vote", func(t provider.T) {
		t.Parallel()
		r := initResources()
		poll, ok := r.usecase.SendPoll(r.session, r.clubID, "Best season?", []string{"One", "Two"}, time.Now().Add(24*time.Hour))
		assert.True(t, ok)

		first, ok := r.usecase.VotePoll(r.session, r.clubID, poll.ID, poll.Options[0].ID)
		assert.True(t, ok)
		assert.Len(t, first.Options[0].Voters, 1)

		second, ok := r.usecase.VotePoll(r.session, r.clubID, poll.ID, poll.Options[1].ID)
		assert.True(t, ok)
		assert.Empty(t, second.Options[0].Voters)
		assert.Len(t, second.Options[1].Voters, 1)
	})

	t.Run("Unknown option is rejected", func(t provider.T) {
		t.Parallel()
		r := initResources()
		poll, _ := r.usecase.SendPoll(r.session, r.clubID, "Best season?", []string{"One", "Two"}, time.Now().Add(24*time.Hour))

		_, ok := r.usecase.VotePoll(r.session, r.clubID, poll.ID, uuid.New())

		assert.False(t, ok)
	})
}

func (suite *ClubSuite) TestPredictionLifecycle(t provider.T) {
	t.Parallel()

	t.Run("Draft locks then reveals then takes votes", func(t provider.T) {
		t.Parallel()
		r := initResources()
		p, ok := r.usecase.AddPrediction(r.session, r.clubID, someRef(), "the boat was real")
		assert.True(t, ok)
		assert.Equal(t, model.PredictionDraft, p.Status)

		locked, err := r.usecase.LockPrediction(r.session, r.clubID, p.ID)
		assert.NoError(t, err)
		assert.Equal(t, model.PredictionLocked, locked.Status)
		assert.False(t, locked.LockedAt.IsZero())

		revealed, err := r.usecase.RevealPrediction(r.session, r.clubID, p.ID, "it was, in fact, real")
		assert.NoError(t, err)
		assert.Equal(t, model.PredictionRevealed, revealed.Status)
		assert.Equal(t, "it was, in fact, real", revealed.Result)

		voted, err := r.usecase.VotePrediction(r.session, r.clubID, p.ID, true)
		assert.NoError(t, err)
		assert.Len(t, voted.Upvotes, 1)
	})

	t.Run("Lock rejects non-drafts", func(t provider.T) {
		t.Parallel()
		r := initResources()
		p, _ := r.usecase.AddPrediction(r.session, r.clubID, someRef(), "called it")
		_, _ = r.usecase.LockPrediction(r.session, r.clubID, p.ID)

		_, err := r.usecase.LockPrediction(r.session, r.clubID, p.ID)

		assert.ErrorIs(t, err, ErrPredictionNotDraft)
	})

	t.Run("Reveal requires a locked prediction", func(t provider.T) {
		t.Parallel()
		r := initResources()
		p, _ := r.usecase.AddPrediction(r.session, r.clubID, someRef(), "called it")

		_, err := r.usecase.RevealPrediction(r.session, r.clubID, p.ID, "outcome")

		assert.ErrorIs(t, err, ErrPredictionNotLocked)
	})

	t.Run("Reveal requires a result", func(t provider.T) {
		t.Parallel()
		r := initResources()
		p, _ := r.usecase.AddPrediction(r.session, r.clubID, someRef(), "called it")
		_, _ = r.usecase.LockPrediction(r.session, r.clubID, p.ID)

		_, err := r.usecase.RevealPrediction(r.session, r.clubID, p.ID, "")

		assert.ErrorIs(t, err, ErrEmptyResult)
	})

	t.Run("Voting before reveal is sealed", func(t provider.T) {
		t.Parallel()
		r := initResources()
		p, _ := r.usecase.AddPrediction(r.session, r.clubID, someRef(), "called it")
		_, _ = r.usecase.LockPrediction(r.session, r.clubID, p.ID)

		_, err := r.usecase.VotePrediction(r.session, r.clubID, p.ID, true)

		assert.ErrorIs(t, err, ErrPredictionSealed)
	})

	t.Run("Revote switches sides", func(t provider.T) {
		t.Parallel()
		r := initResources()
		p, _ := r.usecase.AddPrediction(r.session, r.clubID, someRef(), "called it")
		_, _ = r.usecase.LockPrediction(r.session, r.clubID, p.ID)
		_, _ = r.usecase.RevealPrediction(r.session, r.clubID, p.ID, "outcome")

		_, err := r.usecase.VotePrediction(r.session, r.clubID, p.ID, true)
		assert.NoError(t, err)

		voted, err := r.usecase.VotePrediction(r.session, r.clubID, p.ID, false)
		assert.NoError(t, err)
		assert.Empty(t, voted.Upvotes)
		assert.Len(t, voted.Downvotes, 1)
	})

	t.Run("Unknown ids are a silent no-op", func(t provider.T) {
		t.Parallel()
		r := initResources()

		p, err := r.usecase.LockPrediction(r.session, r.clubID, uuid.New())

		assert.NoError(t, err)
		assert.Equal(t, uuid.Nil, p.ID)
	})
}

func (suite *ClubSuite) TestSeededClubSurvives(t provider.T) {
	t.Parallel()

	s := usecase_session.New(uuid.New().String(), seed.Load())
	clubs := s.Clubs()
	assert.NotEmpty(t, clubs)

	uc := New()
	msg, ok := uc.SendMessage(s, clubs[0].ID, "still here", nil, false)
	assert.True(t, ok)

	club, _ := s.Club(clubs[0].ID)
	assert.Equal(t, msg.ID, club.Messages[len(club.Messages)-1].ID)
}

func TestClubSuite(t *testing.T) {
	suite.RunSuite(t, new(ClubSuite))
}
