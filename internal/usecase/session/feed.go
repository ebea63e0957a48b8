package usecase_session

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/reeltaste/core/internal/metrics"
	"github.com/reeltaste/core/internal/model"
)

// Feed returns the activity stream, newest first. Reaction maps are deep
// copied so callers cannot mutate hub state.
func (s *Session) Feed() []model.FeedActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.FeedActivity, len(s.feed))
	for i, a := range s.feed {
		out[i] = copyActivity(a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PostedAt.After(out[j].PostedAt)
	})
	return out
}

func (s *Session) Activity(id uuid.UUID) (model.FeedActivity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.feed {
		if a.ID == id {
			return copyActivity(a), true
		}
	}
	return model.FeedActivity{}, false
}

// PublishActivity appends a denormalized rating event for the signed-in
// user.
func (s *Session) PublishActivity(a model.FeedActivity) model.FeedActivity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.PostedAt.IsZero() {
		a.PostedAt = time.Now()
	}
	a.UserID = s.user.ID
	if a.Reactions == nil {
		a.Reactions = map[model.ReactionKind][]uuid.UUID{}
	}
	s.feed = append(s.feed, a)
	return a
}

// ToggleReaction flips the signed-in user's reaction of the given kind on
// an activity: present means remove, absent means add. Unknown activity
// ids are a silent no-op.
func (s *Session) ToggleReaction(activityID uuid.UUID, kind model.ReactionKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.feed {
		if s.feed[i].ID != activityID {
			continue
		}

		metrics.ReactionsToggled.Inc()
		if s.feed[i].Reactions == nil {
			s.feed[i].Reactions = map[model.ReactionKind][]uuid.UUID{}
		}
		users := s.feed[i].Reactions[kind]
		for j, id := range users {
			if id == s.user.ID {
				s.feed[i].Reactions[kind] = append(users[:j], users[j+1:]...)
				return
			}
		}
		s.feed[i].Reactions[kind] = append(users, s.user.ID)
		return
	}
}

func copyActivity(a model.FeedActivity) model.FeedActivity {
	out := a
	out.TaggedUsers = append([]uuid.UUID(nil), a.TaggedUsers...)
	out.Reactions = make(map[model.ReactionKind][]uuid.UUID, len(a.Reactions))
	for kind, users := range a.Reactions {
		out.Reactions[kind] = append([]uuid.UUID(nil), users...)
	}
	return out
}
