package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type JobEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"jobId"`
	Timestamp string `json:"timestamp"`
}

// Notifier bridges job mutations to the hub. Satisfies
// usecase.JobEventNotifier.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) JobChanged(userID, jobID uuid.UUID, action string) {
	if n == nil || n.hub == nil {
		return
	}

	evt := JobEvent{
		Type:      "job_" + action,
		JobID:     jobID.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Publish(userID, b)
}
