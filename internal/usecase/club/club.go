// Package usecase_club implements club chat, polls and predictions. Every
// mutation is copy-on-write: locate the club, rebuild the targeted
// sub-collection on a copy, swap the club record back into the session.
// Unknown club/message/poll/prediction ids are silent no-ops, reported
// through the ok return so the delivery layer can skip broadcasting.
package usecase_club

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/reeltaste/core/internal/metrics"
	"github.com/reeltaste/core/internal/model"
	usecase_session "github.com/reeltaste/core/internal/usecase/session"
)

var (
	ErrPredictionNotDraft  = errors.New("prediction already locked or revealed")
	ErrPredictionNotLocked = errors.New("prediction must be locked before reveal")
	ErrPredictionSealed    = errors.New("prediction voting opens after reveal")
	ErrEmptyResult         = errors.New("reveal requires a result")
)

type Usecase struct{}

func New() *Usecase {
	return &Usecase{}
}

// SendMessage appends a chat entry authored by the signed-in user.
func (u *Usecase) SendMessage(s *usecase_session.Session, clubID uuid.UUID, text string, ref *model.ContentRef, spoiler bool) (model.ClubMessage, bool) {
	club, ok := s.Club(clubID)
	if !ok {
		return model.ClubMessage{}, false
	}

	msg := model.ClubMessage{
		ID:        uuid.New(),
		AuthorID:  s.User().ID,
		Text:      text,
		Ref:       ref,
		Spoiler:   spoiler,
		SentAt:    time.Now(),
		Reactions: map[string][]uuid.UUID{},
	}

	club.Messages = append(append([]model.ClubMessage(nil), club.Messages...), msg)
	metrics.ClubMessagesSent.Inc()
	return msg, s.SwapClub(club)
}

// ToggleMessageReaction flips the signed-in user's emoji reaction on a
// chat entry.
func (u *Usecase) ToggleMessageReaction(s *usecase_session.Session, clubID, messageID uuid.UUID, emoji string) (model.ClubMessage, bool) {
	club, ok := s.Club(clubID)
	if !ok {
		return model.ClubMessage{}, false
	}

	userID := s.User().ID
	messages := append([]model.ClubMessage(nil), club.Messages...)
	for i, msg := range messages {
		if msg.ID != messageID {
			continue
		}

		reactions := make(map[string][]uuid.UUID, len(msg.Reactions))
		for e, users := range msg.Reactions {
			reactions[e] = append([]uuid.UUID(nil), users...)
		}

		toggled := false
		for j, id := range reactions[emoji] {
			if id == userID {
				reactions[emoji] = append(reactions[emoji][:j], reactions[emoji][j+1:]...)
				if len(reactions[emoji]) == 0 {
					delete(reactions, emoji)
				}
				toggled = true
				break
			}
		}
		if !toggled {
			reactions[emoji] = append(reactions[emoji], userID)
		}

		messages[i].Reactions = reactions
		club.Messages = messages
		return messages[i], s.SwapClub(club)
	}
	return model.ClubMessage{}, false
}

// CreateClub starts a new club with the signed-in user as the first
// member.
func (u *Usecase) CreateClub(s *usecase_session.Session, name, description string) model.Club {
	club := model.Club{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Members:     []uuid.UUID{s.User().ID},
		CreatedAt:   time.Now(),
	}
	s.AddClub(club)
	return club
}

// JoinClub adds the signed-in user to the member list. Joining twice is a
// no-op.
func (u *Usecase) JoinClub(s *usecase_session.Session, clubID uuid.UUID) (model.Club, bool) {
	club, ok := s.Club(clubID)
	if !ok {
		return model.Club{}, false
	}

	userID := s.User().ID
	if club.IsMember(userID) {
		return club, true
	}

	club.Members = append(append([]uuid.UUID(nil), club.Members...), userID)
	return club, s.SwapClub(club)
}
