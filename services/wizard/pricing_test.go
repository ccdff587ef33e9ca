package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyfairmaids/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestALaCarteTotal(t *testing.T) {
	cart := []models.ALaCarteCartEntry{
		{ServiceID: "alc-fridge", Price: 35, Quantity: 2},
		{ServiceID: "alc-oven", Price: 25, Quantity: 1},
	}
	assert.Equal(t, 95.0, ALaCarteTotal(cart))
	assert.Equal(t, 0.0, ALaCarteTotal(nil))
}

func TestComputeDiscount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		promo    *models.Promo
		want     float64
	}{
		{"no promo", 200, nil, 0},
		{
			"percentage without cap",
			200,
			&models.Promo{DiscountType: models.DiscountPercentage, DiscountValue: 10},
			20.00,
		},
		{
			"percentage capped",
			200,
			&models.Promo{DiscountType: models.DiscountPercentage, DiscountValue: 10, MaximumDiscountAmount: floatPtr(15)},
			15.00,
		},
		{
			"fixed clamped to subtotal",
			30,
			&models.Promo{DiscountType: models.DiscountFixed, DiscountValue: 50},
			30.00,
		},
		{
			"cap applied before subtotal clamp",
			10,
			&models.Promo{DiscountType: models.DiscountPercentage, DiscountValue: 200, MaximumDiscountAmount: floatPtr(12)},
			10.00,
		},
		{
			"unknown discount type yields nothing",
			100,
			&models.Promo{DiscountType: "mystery", DiscountValue: 10},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeDiscount(tt.subtotal, tt.promo), 1e-9)
		})
	}
}

func TestTotalAmount(t *testing.T) {
	t.Run("no promo", func(t *testing.T) {
		assert.Equal(t, 215.00, TotalAmount(150, 20, 45, nil))
	})

	t.Run("discount base excludes room surcharge", func(t *testing.T) {
		promo := &models.Promo{DiscountType: models.DiscountPercentage, DiscountValue: 10}
		// discount = 10% of (150 + 45) = 19.50, not 10% of 215.
		assert.Equal(t, 195.50, TotalAmount(150, 20, 45, promo))
	})

	t.Run("clamped to zero", func(t *testing.T) {
		promo := &models.Promo{DiscountType: models.DiscountFixed, DiscountValue: 500}
		assert.GreaterOrEqual(t, TotalAmount(10, 0, 5, promo), 0.0)
	})
}

func TestSetPlanFetchesBasePrice(t *testing.T) {
	svc, gw := newTestService(t)
	session := startSession(t, svc)

	gw.basePriceFn = func(houseSize, frequency string) (float64, error) {
		require.Equal(t, "2000-2500", houseSize)
		require.Equal(t, models.FrequencyBiWeekly, frequency)
		return 160, nil
	}
	gw.roomFn = func(rooms models.RoomConfiguration, frequency string) (float64, error) {
		return 12.5, nil
	}

	updated, err := svc.SetPlan(context.Background(), session.SessionID, "2000-2500", models.FrequencyBiWeekly)
	require.NoError(t, err)
	assert.Equal(t, 160.0, updated.BasePrice)
	assert.Equal(t, 12.5, updated.RoomSurcharge)
}

func TestSetPlanFallsBackOnGatewayFailure(t *testing.T) {
	svc, gw := newTestService(t)
	session := startSession(t, svc)

	gw.basePriceFn = func(houseSize, frequency string) (float64, error) {
		return 0, errors.New("gateway down")
	}

	updated, err := svc.SetPlan(context.Background(), session.SessionID, "1500-2000", models.FrequencyWeekly)
	require.NoError(t, err)
	assert.Equal(t, 125.00, updated.BasePrice)
}

func TestSetPlanRequiresBothFields(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)

	_, err := svc.SetPlan(context.Background(), session.SessionID, "1500-2000", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestSetRoomsRejectsNegativeCounts(t *testing.T) {
	svc, _ := newTestService(t)
	session := startSession(t, svc)

	_, err := svc.SetRooms(context.Background(), session.SessionID, models.RoomConfiguration{Bedrooms: -1})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestSetRoomsSkipsSurchargeWithoutFrequency(t *testing.T) {
	svc, gw := newTestService(t)
	session := startSession(t, svc)

	called := false
	gw.roomFn = func(rooms models.RoomConfiguration, frequency string) (float64, error) {
		called = true
		return 40, nil
	}

	updated, err := svc.SetRooms(context.Background(), session.SessionID, models.RoomConfiguration{Bedrooms: 3, Bathrooms: 2})
	require.NoError(t, err)
	assert.False(t, called, "room pricing should not be computed before a frequency is chosen")
	assert.Equal(t, 0.0, updated.RoomSurcharge)
}

func TestStaleRoomPricingDropped(t *testing.T) {
	svc, gw := newTestService(t)
	session := startSession(t, svc)

	_, err := svc.SetPlan(context.Background(), session.SessionID, "2000-2500", models.FrequencyWeekly)
	require.NoError(t, err)

	// The first SetRooms call's gateway round trip is still in flight when a
	// newer configuration change lands and resolves first. The older result
	// must not overwrite the newer one.
	firstCall := true
	gw.roomFn = func(rooms models.RoomConfiguration, frequency string) (float64, error) {
		if firstCall {
			firstCall = false
			_, err := svc.SetRooms(context.Background(), session.SessionID, models.RoomConfiguration{Bedrooms: 4, Bathrooms: 3})
			require.NoError(t, err)
			return 10, nil // stale answer for the old configuration
		}
		return 99, nil
	}

	result, err := svc.SetRooms(context.Background(), session.SessionID, models.RoomConfiguration{Bedrooms: 2, Bathrooms: 1})
	require.NoError(t, err)

	assert.Equal(t, 99.0, result.RoomSurcharge, "the newer configuration's surcharge must win")
	assert.Equal(t, 4, result.Rooms.Bedrooms)
}

func TestQuoteForAggregatesComponents(t *testing.T) {
	session := &models.WizardSession{
		BasePrice:     150,
		RoomSurcharge: 20,
		ALaCarteCart: []models.ALaCarteCartEntry{
			{ServiceID: "alc-fridge", Price: 45, Quantity: 1},
		},
		Promo: models.PromoState{
			Status: models.PromoApplied,
			Promo:  &models.Promo{Code: "SAVE10", DiscountType: models.DiscountPercentage, DiscountValue: 10},
		},
	}

	quote := QuoteFor(session)
	assert.Equal(t, 150.0, quote.BasePrice)
	assert.Equal(t, 20.0, quote.RoomSurcharge)
	assert.Equal(t, 45.0, quote.ALaCarteTotal)
	assert.Equal(t, 19.50, quote.Discount)
	assert.Equal(t, 195.50, quote.Total)
}

func TestQuoteIgnoresUnappliedPromo(t *testing.T) {
	session := &models.WizardSession{
		BasePrice: 100,
		Promo: models.PromoState{
			Status: models.PromoRejected,
			Promo:  nil,
		},
	}
	quote := QuoteFor(session)
	assert.Equal(t, 0.0, quote.Discount)
	assert.Equal(t, 100.0, quote.Total)
}
