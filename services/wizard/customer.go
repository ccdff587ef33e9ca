package wizard

import (
	"context"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"cyfairmaids/models"
	"cyfairmaids/services/tasks"
)

// abandonedReminderDelay is how long after contact details are entered an
// unsubmitted session triggers a reminder email.
const abandonedReminderDelay = time.Hour

// SetCustomer records the contact details and special instructions. Field
// completeness is enforced by step gating, not here, so partial saves from the
// form are fine.
func (s *DefaultWizardService) SetCustomer(ctx context.Context, sessionID string, customer models.CustomerInfo, instructions string) (*models.WizardSession, error) {
	session, err := s.mutateSession(ctx, sessionID, func(se *models.WizardSession) error {
		se.Customer = customer
		se.SpecialInstructions = instructions
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.scheduleAbandonedReminder(session)
	return session, nil
}

// scheduleAbandonedReminder queues a reminder for a session that has an email
// on file. The worker checks that the session still exists before sending, so
// submitted or cancelled sessions never produce a reminder.
func (s *DefaultWizardService) scheduleAbandonedReminder(session *models.WizardSession) {
	if s.Tasks == nil || session.Customer.Email == "" {
		return
	}

	payload := tasks.AbandonedSessionPayload{
		SessionID: session.SessionID,
		Email:     session.Customer.Email,
		FirstName: session.Customer.FirstName,
	}
	task, opts, err := tasks.NewAbandonedSessionTask(payload, abandonedReminderDelay)
	if err != nil {
		s.Logger.Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Tasks.Enqueue(task, opts...); err != nil {
		// A duplicate id means a reminder is already pending for this session.
		if !errors.Is(err, asynq.ErrDuplicateTask) && !errors.Is(err, asynq.ErrTaskIDConflict) {
			s.Logger.Warn("failed to enqueue reminder task",
				zap.String("sessionID", session.SessionID),
				zap.Error(err))
		}
	}
}
