package wizard

import (
	"context"

	"cyfairmaids/models"
)

// serviceableZips is the fixed operating-area allowlist. It mirrors server-side
// enforcement; a booking for any other ZIP would be rejected downstream anyway.
var serviceableZips = map[string]struct{}{
	"77433": {},
	"77095": {},
	"77449": {},
	"77084": {},
	"77065": {},
	"77040": {},
}

// ZipServiceable reports whether the platform operates in the given ZIP code.
func ZipServiceable(zip string) bool {
	_, ok := serviceableZips[zip]
	return ok
}

// ServiceableZips returns the operating-area allowlist.
func ServiceableZips() []string {
	zips := make([]string, 0, len(serviceableZips))
	for z := range serviceableZips {
		zips = append(zips, z)
	}
	return zips
}

// CanProceed is the pure step-gating predicate: whether the accumulated state
// satisfies the entry conditions of the target step.
func CanProceed(session *models.WizardSession, target models.WizardStep) bool {
	switch target {
	case models.StepSchedule:
		return session.HouseSize != "" && session.Frequency != ""
	case models.StepContact:
		return session.BookingDate != "" && session.TimeSlot != ""
	case models.StepConfirm:
		c := session.Customer
		return c.Email != "" && c.FirstName != "" && c.LastName != "" && ZipServiceable(c.ZipCode)
	default:
		return true
	}
}

// unmetCondition names the first unmet entry condition for the target step, so
// validation failures carry actionable inline feedback.
func unmetCondition(session *models.WizardSession, target models.WizardStep) string {
	switch target {
	case models.StepSchedule:
		if session.HouseSize == "" {
			return "house size must be selected"
		}
		return "cleaning frequency must be selected"
	case models.StepContact:
		if session.BookingDate == "" {
			return "a booking date must be selected"
		}
		return "a time slot must be selected"
	case models.StepConfirm:
		c := session.Customer
		switch {
		case c.Email == "":
			return "email is required"
		case c.FirstName == "":
			return "first name is required"
		case c.LastName == "":
			return "last name is required"
		default:
			return "zip code is outside our service area"
		}
	}
	return ""
}

// Advance moves the wizard forward by exactly one step. It is a no-op on the
// final step and is rejected when the next step's entry conditions are unmet.
func (s *DefaultWizardService) Advance(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.mutateSession(ctx, sessionID, func(session *models.WizardSession) error {
		if session.CurrentStep == models.StepConfirm {
			return nil
		}
		next := session.CurrentStep + 1
		if !CanProceed(session, next) {
			return NewValidationError(unmetCondition(session, next))
		}
		session.CurrentStep = next
		return nil
	})
}

// Retreat moves the wizard backward by exactly one step, unconditionally. It
// is a no-op on the first step.
func (s *DefaultWizardService) Retreat(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.mutateSession(ctx, sessionID, func(session *models.WizardSession) error {
		if session.CurrentStep == models.StepServicesRooms {
			return nil
		}
		session.CurrentStep--
		return nil
	})
}
