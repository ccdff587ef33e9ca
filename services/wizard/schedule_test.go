package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyfairmaids/models"
)

func TestAvailableDates(t *testing.T) {
	svc, gw := newTestService(t)
	gw.dates = []string{"2026-09-04", "2026-09-05"}

	dates, err := svc.AvailableDates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-04", "2026-09-05"}, dates)
}

func TestSelectDateFetchesSlots(t *testing.T) {
	svc, gw := newTestService(t)
	session := startSession(t, svc)
	gw.slots = map[string][]string{"2026-09-04": {"08:00-11:00", "13:00-16:00"}}

	updated, err := svc.SelectDate(context.Background(), session.SessionID, "2026-09-04")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-04", updated.BookingDate)
	assert.Equal(t, []string{"08:00-11:00", "13:00-16:00"}, updated.AvailableSlots)
	assert.Empty(t, updated.TimeSlot)
}

func TestDateChangeClearsChosenSlot(t *testing.T) {
	svc, gw := newTestService(t)
	session := startSession(t, svc)
	ctx := context.Background()
	gw.slots = map[string][]string{
		"2026-09-04": {"08:00-11:00"},
		"2026-09-05": {"13:00-16:00"},
	}

	_, err := svc.SelectDate(ctx, session.SessionID, "2026-09-04")
	require.NoError(t, err)
	_, err = svc.SelectSlot(ctx, session.SessionID, "08:00-11:00")
	require.NoError(t, err)

	// Changing the date must clear the slot before the new list arrives; the
	// old slot is not valid for the new date and must not survive.
	updated, err := svc.SelectDate(ctx, session.SessionID, "2026-09-05")
	require.NoError(t, err)
	assert.Empty(t, updated.TimeSlot)
	assert.Equal(t, []string{"13:00-16:00"}, updated.AvailableSlots)
}

func TestDateChangeClearsSlotEvenWhenFetchFails(t *testing.T) {
	svc, gw := newTestService(t)
	session := startSession(t, svc)
	ctx := context.Background()
	gw.slots = map[string][]string{"2026-09-04": {"08:00-11:00"}}

	_, err := svc.SelectDate(ctx, session.SessionID, "2026-09-04")
	require.NoError(t, err)
	_, err = svc.SelectSlot(ctx, session.SessionID, "08:00-11:00")
	require.NoError(t, err)

	gw.slotsErr = errors.New("gateway down")
	_, err = svc.SelectDate(ctx, session.SessionID, "2026-09-05")
	require.Error(t, err)

	// Clearing happens before the fetch, so the stale slot is gone regardless.
	current, err := svc.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Empty(t, current.TimeSlot)
	assert.Equal(t, "2026-09-05", current.BookingDate)
}

func TestSelectSlotRequiresAvailability(t *testing.T) {
	svc, gw := newTestService(t)
	session := startSession(t, svc)
	ctx := context.Background()
	gw.slots = map[string][]string{"2026-09-04": {"08:00-11:00"}}

	_, err := svc.SelectSlot(ctx, session.SessionID, "08:00-11:00")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr, "selecting a slot before a date must be rejected")

	_, err = svc.SelectDate(ctx, session.SessionID, "2026-09-04")
	require.NoError(t, err)

	_, err = svc.SelectSlot(ctx, session.SessionID, "23:00-23:30")
	require.ErrorAs(t, err, &vErr)

	updated, err := svc.SelectSlot(ctx, session.SessionID, "08:00-11:00")
	require.NoError(t, err)
	assert.Equal(t, "08:00-11:00", updated.TimeSlot)
}

func TestSetCustomerStoresContactDetails(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)

	customer := models.CustomerInfo{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Address:   "1 Main St",
		City:      "Cypress",
		State:     "TX",
		ZipCode:   "77433",
	}
	updated, err := svc.SetCustomer(context.Background(), session.SessionID, customer, "gate code 1234")
	require.NoError(t, err)
	assert.Equal(t, customer, updated.Customer)
	assert.Equal(t, "gate code 1234", updated.SpecialInstructions)
}
