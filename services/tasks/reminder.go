package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeAbandonedSessionReminder = "wizard:abandoned-reminder"

// AbandonedSessionPayload identifies a wizard session worth nudging: contact
// details were entered but the booking was never submitted.
type AbandonedSessionPayload struct {
	SessionID string `json:"sessionId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
}

// NewAbandonedSessionTask builds the reminder task. The task id is derived
// from the session id so re-entering contact details replaces the pending
// reminder instead of stacking a second one.
func NewAbandonedSessionTask(payload AbandonedSessionPayload, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAbandonedSessionReminder, b)
	opts := []asynq.Option{
		asynq.ProcessIn(delay),
		asynq.TaskID("reminder:" + payload.SessionID),
	}

	return task, opts, nil
}
