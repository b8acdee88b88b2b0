package usecase

import "github.com/google/uuid"

// JobEventNotifier pushes a change event to the owner's live
// connections. Implementations must not block the request path.
type JobEventNotifier interface {
	JobChanged(userID, jobID uuid.UUID, action string)
}
