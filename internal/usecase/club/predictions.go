package usecase_club

import (
	"time"

	"github.com/google/uuid"
	"github.com/reeltaste/core/internal/model"
	usecase_session "github.com/reeltaste/core/internal/usecase/session"
)

// AddPrediction files a draft guess about in-progress content.
func (u *Usecase) AddPrediction(s *usecase_session.Session, clubID uuid.UUID, ref model.ContentRef, text string) (model.Prediction, bool) {
	club, ok := s.Club(clubID)
	if !ok {
		return model.Prediction{}, false
	}

	p := model.Prediction{
		ID:       uuid.New(),
		AuthorID: s.User().ID,
		Ref:      ref,
		Text:     text,
		Status:   model.PredictionDraft,
		MadeAt:   time.Now(),
	}

	club.Predictions = append(append([]model.Prediction(nil), club.Predictions...), p)
	return p, s.SwapClub(club)
}

// LockPrediction moves a draft to locked and stamps the lock time. Locking
// anything but a draft fails with ErrPredictionNotDraft.
func (u *Usecase) LockPrediction(s *usecase_session.Session, clubID, predictionID uuid.UUID) (model.Prediction, error) {
	return u.updatePrediction(s, clubID, predictionID, func(p *model.Prediction) error {
		if p.Status != model.PredictionDraft {
			return ErrPredictionNotDraft
		}
		p.Status = model.PredictionLocked
		p.LockedAt = time.Now()
		return nil
	})
}

// RevealPrediction moves a locked prediction to revealed and attaches the
// outcome. The prediction must be locked first and the result non-empty.
func (u *Usecase) RevealPrediction(s *usecase_session.Session, clubID, predictionID uuid.UUID, result string) (model.Prediction, error) {
	if result == "" {
		return model.Prediction{}, ErrEmptyResult
	}
	return u.updatePrediction(s, clubID, predictionID, func(p *model.Prediction) error {
		if p.Status != model.PredictionLocked {
			return ErrPredictionNotLocked
		}
		p.Status = model.PredictionRevealed
		p.RevealedAt = time.Now()
		p.Result = result
		return nil
	})
}

// VotePrediction records the signed-in member's up/down verdict after
// reveal. Revoting switches sides.
func (u *Usecase) VotePrediction(s *usecase_session.Session, clubID, predictionID uuid.UUID, up bool) (model.Prediction, error) {
	userID := s.User().ID
	return u.updatePrediction(s, clubID, predictionID, func(p *model.Prediction) error {
		if p.Status != model.PredictionRevealed {
			return ErrPredictionSealed
		}

		p.Upvotes = without(p.Upvotes, userID)
		p.Downvotes = without(p.Downvotes, userID)
		if up {
			p.Upvotes = append(p.Upvotes, userID)
		} else {
			p.Downvotes = append(p.Downvotes, userID)
		}
		return nil
	})
}

// updatePrediction is the copy-on-write walk shared by the lifecycle ops.
// A missing club or prediction id returns (zero, nil): the silent no-op
// contract.
func (u *Usecase) updatePrediction(s *usecase_session.Session, clubID, predictionID uuid.UUID, apply func(*model.Prediction) error) (model.Prediction, error) {
	club, ok := s.Club(clubID)
	if !ok {
		return model.Prediction{}, nil
	}

	predictions := append([]model.Prediction(nil), club.Predictions...)
	for i := range predictions {
		if predictions[i].ID != predictionID {
			continue
		}

		predictions[i].Upvotes = append([]uuid.UUID(nil), predictions[i].Upvotes...)
		predictions[i].Downvotes = append([]uuid.UUID(nil), predictions[i].Downvotes...)
		if err := apply(&predictions[i]); err != nil {
			return model.Prediction{}, err
		}
		club.Predictions = predictions
		s.SwapClub(club)
		return predictions[i], nil
	}
	return model.Prediction{}, nil
}

func without(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, cur := range ids {
		if cur != id {
			out = append(out, cur)
		}
	}
	return out
}
