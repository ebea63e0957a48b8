package usecase_session

import (
	"github.com/reeltaste/core/internal/metrics"
	"github.com/reeltaste/core/internal/model"
)

// PushScreen appends a descriptor to the navigation stack. Depth is
// unbounded and the same destination may appear multiple times (drilling
// through several movie details in sequence).
func (s *Session) PushScreen(screen model.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stack = append(s.stack, screen)
	metrics.ScreensPushed.Inc()
}

// PopScreen removes the top entry. Popping an empty stack is a no-op.
func (s *Session) PopScreen() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stack) == 0 {
		return
	}
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Session) ClearStack() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stack = nil
}

// Stack returns the descriptors bottom-up; the last entry is the screen
// currently interactive.
func (s *Session) Stack() []model.Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Screen, len(s.stack))
	copy(out, s.stack)
	return out
}
