package model

import "github.com/google/uuid"

// MaxMountRushmore caps the all-time favorites shown on a profile.
const MaxMountRushmore = 4

type User struct {
	ID            uuid.UUID
	Handle        string
	DisplayName   string
	Bio           string
	AvatarColor   string
	MountRushmore []ContentRef
	Friends       []Friend
}

// Friend carries the precomputed taste-match percentage used for display.
type Friend struct {
	UserID     uuid.UUID
	TasteMatch int
}

func (u User) IsFriend(id uuid.UUID) bool {
	for _, f := range u.Friends {
		if f.UserID == id {
			return true
		}
	}
	return false
}
