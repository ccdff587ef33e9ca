package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyfairmaids/models"
)

func TestZipServiceable(t *testing.T) {
	assert.True(t, ZipServiceable("77095"))
	assert.False(t, ZipServiceable("10001"))
	assert.False(t, ZipServiceable(""))
}

func TestCanProceed(t *testing.T) {
	base := func() *models.WizardSession { return &models.WizardSession{} }

	t.Run("to schedule requires house size and frequency", func(t *testing.T) {
		s := base()
		assert.False(t, CanProceed(s, models.StepSchedule))

		s.HouseSize = "1500-2000"
		assert.False(t, CanProceed(s, models.StepSchedule), "house size alone is not enough")

		s.Frequency = models.FrequencyWeekly
		assert.True(t, CanProceed(s, models.StepSchedule))
	})

	t.Run("to contact requires date and slot", func(t *testing.T) {
		s := base()
		s.BookingDate = "2026-09-04"
		assert.False(t, CanProceed(s, models.StepContact))
		s.TimeSlot = "08:00-11:00"
		assert.True(t, CanProceed(s, models.StepContact))
	})

	t.Run("to confirm requires contact fields and serviceable zip", func(t *testing.T) {
		s := base()
		s.Customer = models.CustomerInfo{
			Email:     "jane@example.com",
			FirstName: "Jane",
			LastName:  "Doe",
			ZipCode:   "10001",
		}
		assert.False(t, CanProceed(s, models.StepConfirm), "out-of-area zip must block the confirm step")

		s.Customer.ZipCode = "77095"
		assert.True(t, CanProceed(s, models.StepConfirm))

		s.Customer.Email = ""
		assert.False(t, CanProceed(s, models.StepConfirm))
	})

	t.Run("backward targets are always allowed", func(t *testing.T) {
		assert.True(t, CanProceed(base(), models.StepServicesRooms))
	})
}

func TestAdvanceGatesOnStepValidity(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)
	ctx := context.Background()

	_, err := svc.Advance(ctx, session.SessionID)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr, "advancing without a plan must be rejected")

	_, err = svc.SetPlan(ctx, session.SessionID, "1500-2000", models.FrequencyWeekly)
	require.NoError(t, err)

	advanced, err := svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSchedule, advanced.CurrentStep)
}

func TestAdvanceMovesOneStepAtATime(t *testing.T) {
	svc, gw := newTestService(t)
	session := startSession(t, svc)
	ctx := context.Background()

	gw.slots = map[string][]string{"2026-09-04": {"08:00-11:00"}}

	_, err := svc.SetPlan(ctx, session.SessionID, "1500-2000", models.FrequencyWeekly)
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, session.SessionID, "2026-09-04")
	require.NoError(t, err)
	_, err = svc.SelectSlot(ctx, session.SessionID, "08:00-11:00")
	require.NoError(t, err)

	s1, err := svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSchedule, s1.CurrentStep)

	s2, err := svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepContact, s2.CurrentStep)
}

func TestAdvanceNoOpOnFinalStep(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)
	ctx := context.Background()

	_, err := svc.mutateSession(ctx, session.SessionID, func(se *models.WizardSession) error {
		se.CurrentStep = models.StepConfirm
		return nil
	})
	require.NoError(t, err)

	result, err := svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirm, result.CurrentStep)
}

func TestRetreatIsUnconditional(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)
	ctx := context.Background()

	_, err := svc.mutateSession(ctx, session.SessionID, func(se *models.WizardSession) error {
		se.CurrentStep = models.StepContact
		return nil
	})
	require.NoError(t, err)

	s1, err := svc.Retreat(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSchedule, s1.CurrentStep)

	s2, err := svc.Retreat(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepServicesRooms, s2.CurrentStep)

	// Already on the first step: no-op, no error.
	s3, err := svc.Retreat(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepServicesRooms, s3.CurrentStep)
}
