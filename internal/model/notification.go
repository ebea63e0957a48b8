package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationRecommendation NotificationKind = "recommendation"
	NotificationReaction       NotificationKind = "reaction"
	NotificationComment        NotificationKind = "comment"
	NotificationFollow         NotificationKind = "follow"
)

type Notification struct {
	ID        uuid.UUID
	Kind      NotificationKind
	ActorID   uuid.UUID
	Subject   *ContentRef
	Message   string
	CreatedAt time.Time
	Seen      bool
}
