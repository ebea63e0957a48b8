package usecase_session

import (
	"fmt"

	"github.com/reeltaste/core/internal/model"
)

type ProfileUpdate struct {
	DisplayName string
	Bio         string
	AvatarColor string
}

// UpdateProfile edits the signed-in user's display fields. Empty fields
// keep their current value.
func (s *Session) UpdateProfile(upd ProfileUpdate) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if upd.DisplayName != "" {
		s.user.DisplayName = upd.DisplayName
	}
	if upd.Bio != "" {
		s.user.Bio = upd.Bio
	}
	if upd.AvatarColor != "" {
		s.user.AvatarColor = upd.AvatarColor
	}
	s.syncUserLocked()
	return s.user
}

// SetMountRushmore replaces the profile's all-time favorites. More than
// four refs is rejected.
func (s *Session) SetMountRushmore(refs []model.ContentRef) error {
	if len(refs) > model.MaxMountRushmore {
		return fmt.Errorf("%w: mount rushmore holds at most %d titles", ErrInvalidInput, model.MaxMountRushmore)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user.MountRushmore = append([]model.ContentRef(nil), refs...)
	s.syncUserLocked()
	return nil
}

// syncUserLocked mirrors profile edits into the known-users list so
// UserByID stays consistent. Caller holds the lock.
func (s *Session) syncUserLocked() {
	for i := range s.users {
		if s.users[i].ID == s.user.ID {
			s.users[i] = s.user
			return
		}
	}
}
