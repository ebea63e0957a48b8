package usecase_session

import (
	"sort"

	"github.com/google/uuid"
	"github.com/reeltaste/core/internal/model"
)

// Notifications returns the inbox, newest first.
func (s *Session) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Session) UnseenCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, note := range s.notifications {
		if !note.Seen {
			n++
		}
	}
	return n
}

// MarkNotificationSeen is a silent no-op on unknown ids.
func (s *Session) MarkNotificationSeen(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Seen = true
			return
		}
	}
}

func (s *Session) MarkAllNotificationsSeen() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		s.notifications[i].Seen = true
	}
}
