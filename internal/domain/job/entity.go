package job

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusInterview Status = "interview"
	StatusDeclined  Status = "declined"
)

type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeRemote     Type = "remote"
	TypeInternship Type = "internship"
)

// Statuses are the recognized status values, in display order.
var Statuses = []Status{StatusPending, StatusInterview, StatusDeclined}

var Types = []Type{TypeFullTime, TypePartTime, TypeRemote, TypeInternship}

var ErrInvalidField = errors.New("invalid job field")

type Job struct {
	ID        uuid.UUID
	Company   string
	Position  string
	Status    Status
	JobType   Type
	Location  string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInterview, StatusDeclined:
		return true
	}
	return false
}

func ValidType(t Type) bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeRemote, TypeInternship:
		return true
	}
	return false
}

// Validate checks the full document the way the schema constraints do:
// non-empty text fields and recognized enum values.
func (j Job) Validate() error {
	if j.Company == "" {
		return fmt.Errorf("%w: please provide company", ErrInvalidField)
	}
	if j.Position == "" {
		return fmt.Errorf("%w: please provide position", ErrInvalidField)
	}
	if j.Location == "" {
		return fmt.Errorf("%w: please provide location", ErrInvalidField)
	}
	if !ValidStatus(j.Status) {
		return fmt.Errorf("%w: %q is not a valid status", ErrInvalidField, string(j.Status))
	}
	if !ValidType(j.JobType) {
		return fmt.Errorf("%w: %q is not a valid job type", ErrInvalidField, string(j.JobType))
	}
	return nil
}
