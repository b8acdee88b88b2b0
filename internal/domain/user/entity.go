package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	LastName     string
	Email        string
	PasswordHash string
	Location     string

	// IsDemo marks the shared read-only account: it may browse but
	// every mutating request is rejected.
	IsDemo bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
