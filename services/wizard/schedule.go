package wizard

import (
	"context"
	"fmt"

	"cyfairmaids/models"
)

// AvailableDates fetches the bookable dates from the gateway.
func (s *DefaultWizardService) AvailableDates(ctx context.Context) ([]string, error) {
	dates, err := s.Gateway.GetAvailableDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available dates: %w", err)
	}
	return dates, nil
}

// SelectDate records a booking date. Any previously chosen time slot is
// cleared and persisted before the new slot list is fetched, so a stale slot
// can never survive a date change.
func (s *DefaultWizardService) SelectDate(ctx context.Context, sessionID, date string) (*models.WizardSession, error) {
	if date == "" {
		return nil, NewValidationError("a booking date is required")
	}

	session, err := s.mutateSession(ctx, sessionID, func(se *models.WizardSession) error {
		se.BookingDate = date
		se.TimeSlot = ""
		se.AvailableSlots = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	slots, err := s.Gateway.GetTimeSlots(ctx, date)
	if err != nil {
		// The date stays selected with no slots; the fetch is retryable.
		return session, fmt.Errorf("failed to fetch time slots: %w", err)
	}

	return s.mutateSession(ctx, sessionID, func(se *models.WizardSession) error {
		if se.BookingDate != date {
			// A newer date selection superseded this fetch.
			return nil
		}
		se.AvailableSlots = slots
		return nil
	})
}

// SelectSlot records the chosen time slot. The slot must belong to the slot
// list fetched for the currently selected date.
func (s *DefaultWizardService) SelectSlot(ctx context.Context, sessionID, slot string) (*models.WizardSession, error) {
	return s.mutateSession(ctx, sessionID, func(se *models.WizardSession) error {
		if se.BookingDate == "" {
			return NewValidationError("a booking date must be selected first")
		}
		for _, available := range se.AvailableSlots {
			if available == slot {
				se.TimeSlot = slot
				return nil
			}
		}
		return NewValidationError(fmt.Sprintf("time slot %q is not available on %s", slot, se.BookingDate))
	})
}
