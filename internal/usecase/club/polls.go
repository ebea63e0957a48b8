package usecase_club

import (
	"time"

	"github.com/google/uuid"
	"github.com/reeltaste/core/internal/model"
	usecase_session "github.com/reeltaste/core/internal/usecase/session"
)

// SendPoll posts a poll with the given option texts.
func (u *Usecase) SendPoll(s *usecase_session.Session, clubID uuid.UUID, question string, options []string, closesAt time.Time) (model.Poll, bool) {
	club, ok := s.Club(clubID)
	if !ok {
		return model.Poll{}, false
	}

	poll := model.Poll{
		ID:       uuid.New(),
		AuthorID: s.User().ID,
		Question: question,
		ClosesAt: closesAt,
		PostedAt: time.Now(),
	}
	for _, text := range options {
		poll.Options = append(poll.Options, model.PollOption{ID: uuid.New(), Text: text})
	}

	club.Polls = append(append([]model.Poll(nil), club.Polls...), poll)
	return poll, s.SwapClub(club)
}

// VotePoll records one vote per member; a revote moves the vote to the
// new option.
func (u *Usecase) VotePoll(s *usecase_session.Session, clubID, pollID, optionID uuid.UUID) (model.Poll, bool) {
	club, ok := s.Club(clubID)
	if !ok {
		return model.Poll{}, false
	}

	userID := s.User().ID
	polls := append([]model.Poll(nil), club.Polls...)
	for i, poll := range polls {
		if poll.ID != pollID {
			continue
		}

		options := append([]model.PollOption(nil), poll.Options...)
		target := -1
		for j, opt := range options {
			voters := append([]uuid.UUID(nil), opt.Voters...)
			for k, id := range voters {
				if id == userID {
					voters = append(voters[:k], voters[k+1:]...)
					break
				}
			}
			options[j].Voters = voters
			if opt.ID == optionID {
				target = j
			}
		}
		if target < 0 {
			return model.Poll{}, false
		}

		options[target].Voters = append(options[target].Voters, userID)
		polls[i].Options = options
		club.Polls = polls
		return polls[i], s.SwapClub(club)
	}
	return model.Poll{}, false
}
