package usecase_session

import (
	"github.com/google/uuid"
	"github.com/reeltaste/core/internal/model"
)

// Clubs returns shallow copies of the session's club records.
func (s *Session) Clubs() []model.Club {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Club, len(s.clubs))
	copy(out, s.clubs)
	return out
}

func (s *Session) Club(id uuid.UUID) (model.Club, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.clubs {
		if c.ID == id {
			return c, true
		}
	}
	return model.Club{}, false
}

// SwapClub replaces the club with a matching id, the copy-on-write commit
// point for every club mutation. Reports whether a club was replaced.
func (s *Session) SwapClub(club model.Club) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.clubs {
		if c.ID == club.ID {
			s.clubs[i] = club
			return true
		}
	}
	return false
}

func (s *Session) AddClub(club model.Club) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clubs = append(s.clubs, club)
}
