package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleService(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)
	ctx := context.Background()

	s1, err := svc.ToggleService(ctx, session.SessionID, "svc-standard")
	require.NoError(t, err)
	require.Len(t, s1.SelectedServices, 1)
	assert.Equal(t, 1, s1.SelectedServices[0].Quantity)

	// Toggling again removes it; toggles are idempotent per click.
	s2, err := svc.ToggleService(ctx, session.SessionID, "svc-standard")
	require.NoError(t, err)
	assert.Empty(t, s2.SelectedServices)
}

func TestToggleServiceRejectsAddOns(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)

	_, err := svc.ToggleService(context.Background(), session.SessionID, "alc-fridge")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestToggleServiceUnknownID(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)

	_, err := svc.ToggleService(context.Background(), session.SessionID, "nope")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestAddALaCarteIncrementsExisting(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)
	ctx := context.Background()

	s1, err := svc.AddALaCarte(ctx, session.SessionID, "alc-fridge")
	require.NoError(t, err)
	require.Len(t, s1.ALaCarteCart, 1)
	assert.Equal(t, 1, s1.ALaCarteCart[0].Quantity)
	assert.Equal(t, 35.0, s1.ALaCarteCart[0].Price)
	assert.Equal(t, "Fridge Cleaning", s1.ALaCarteCart[0].ServiceName)

	s2, err := svc.AddALaCarte(ctx, session.SessionID, "alc-fridge")
	require.NoError(t, err)
	require.Len(t, s2.ALaCarteCart, 1)
	assert.Equal(t, 2, s2.ALaCarteCart[0].Quantity)
}

func TestAddALaCarteRejectsStandardServices(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)

	_, err := svc.AddALaCarte(context.Background(), session.SessionID, "svc-deep")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestSetALaCarteQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)
	ctx := context.Background()

	_, err := svc.AddALaCarte(ctx, session.SessionID, "alc-oven")
	require.NoError(t, err)

	s1, err := svc.SetALaCarteQuantity(ctx, session.SessionID, "alc-oven", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, s1.ALaCarteCart[0].Quantity)
	assert.Equal(t, 75.0, ALaCarteTotal(s1.ALaCarteCart))

	// Quantity 0 removes the entry entirely so it no longer contributes.
	s2, err := svc.SetALaCarteQuantity(ctx, session.SessionID, "alc-oven", 0)
	require.NoError(t, err)
	assert.Empty(t, s2.ALaCarteCart)
	assert.Equal(t, 0.0, ALaCarteTotal(s2.ALaCarteCart))
}

func TestSetALaCarteQuantityRejectsNegative(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)
	ctx := context.Background()

	_, err := svc.AddALaCarte(ctx, session.SessionID, "alc-oven")
	require.NoError(t, err)

	_, err = svc.SetALaCarteQuantity(ctx, session.SessionID, "alc-oven", -1)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestSetALaCarteQuantityMissingEntry(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)

	_, err := svc.SetALaCarteQuantity(context.Background(), session.SessionID, "alc-oven", 2)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}
