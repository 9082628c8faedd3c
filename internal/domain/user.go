package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRef is the minimal public identity of a user, used where a name is
// denormalized next to an id (assignees, activity actors, presence).
type UserRef struct {
	ID   uuid.UUID
	Name string
}

// Ref returns the public reference for u.
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name}
}
