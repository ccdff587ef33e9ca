package wizard

import (
	"context"
	"math"

	"go.uber.org/zap"

	"cyfairmaids/models"
)

// FallbackBasePrice is the advertised minimum price. When the gateway pricing
// call fails the wizard degrades to this constant instead of leaving the price
// undefined.
const FallbackBasePrice = 125.00

func roundCents(x float64) float64 {
	return math.Round(x*100) / 100
}

// ALaCarteTotal sums price x quantity over the add-on cart.
func ALaCarteTotal(cart []models.ALaCarteCartEntry) float64 {
	total := 0.0
	for _, e := range cart {
		total += e.Price * float64(e.Quantity)
	}
	return roundCents(total)
}

// ComputeDiscount computes the discount a promo yields against a subtotal.
// The maximum-discount cap is applied first, then the result is clamped to the
// subtotal: a capped percentage discount can still nominally exceed a very
// small subtotal, so the order matters.
func ComputeDiscount(subtotal float64, promo *models.Promo) float64 {
	if promo == nil {
		return 0
	}
	var discount float64
	switch promo.DiscountType {
	case models.DiscountPercentage:
		discount = subtotal * promo.DiscountValue / 100
	case models.DiscountFixed:
		discount = promo.DiscountValue
	default:
		return 0
	}
	if promo.MaximumDiscountAmount != nil && discount > *promo.MaximumDiscountAmount {
		discount = *promo.MaximumDiscountAmount
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return roundCents(discount)
}

// TotalAmount combines the price components into the final amount, clamped to
// zero. The discount base is basePrice + aLaCarteTotal: room surcharge is
// excluded from the discount base but included in the final sum. The asymmetry
// is deliberate pending product-owner confirmation; do not "fix" it here.
func TotalAmount(basePrice, roomSurcharge, aLaCarteTotal float64, promo *models.Promo) float64 {
	discount := ComputeDiscount(basePrice+aLaCarteTotal, promo)
	total := basePrice + roomSurcharge + aLaCarteTotal - discount
	if total < 0 {
		total = 0
	}
	return roundCents(total)
}

// appliedPromo returns the session's promo when one is actually applied.
func appliedPromo(session *models.WizardSession) *models.Promo {
	if session.Promo.Status == models.PromoApplied {
		return session.Promo.Promo
	}
	return nil
}

// QuoteFor builds the pricing summary for a session snapshot.
func QuoteFor(session *models.WizardSession) *models.Quote {
	alc := ALaCarteTotal(session.ALaCarteCart)
	promo := appliedPromo(session)
	return &models.Quote{
		BasePrice:     session.BasePrice,
		RoomSurcharge: session.RoomSurcharge,
		ALaCarteTotal: alc,
		Discount:      ComputeDiscount(session.BasePrice+alc, promo),
		Total:         TotalAmount(session.BasePrice, session.RoomSurcharge, alc, promo),
	}
}

// Quote returns the current pricing summary of a session.
func (s *DefaultWizardService) Quote(ctx context.Context, sessionID string) (*models.Quote, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return QuoteFor(session), nil
}

// SetPlan records the house size and cleaning frequency and refreshes both
// remote-priced components.
func (s *DefaultWizardService) SetPlan(ctx context.Context, sessionID, houseSize, frequency string) (*models.WizardSession, error) {
	session, err := s.mutateSession(ctx, sessionID, func(se *models.WizardSession) error {
		if houseSize == "" || frequency == "" {
			return NewValidationError("house size and frequency are both required")
		}
		se.HouseSize = houseSize
		se.Frequency = frequency
		se.PricingGeneration++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.refreshPricing(ctx, session, true)
}

// SetRooms records a new room configuration and refreshes the room surcharge.
func (s *DefaultWizardService) SetRooms(ctx context.Context, sessionID string, rooms models.RoomConfiguration) (*models.WizardSession, error) {
	session, err := s.mutateSession(ctx, sessionID, func(se *models.WizardSession) error {
		if !rooms.Valid() {
			return NewValidationError("room counts cannot be negative")
		}
		se.Rooms = rooms
		se.PricingGeneration++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.refreshPricing(ctx, session, false)
}

// refreshPricing recomputes the remote-priced components for the snapshot that
// triggered it. The write-back is generation-guarded: if a newer rooms/plan
// mutation bumped the counter while this request was in flight, the result is
// stale and is dropped (last request wins).
func (s *DefaultWizardService) refreshPricing(ctx context.Context, snapshot *models.WizardSession, includeBase bool) (*models.WizardSession, error) {
	gen := snapshot.PricingGeneration

	basePrice := snapshot.BasePrice
	if includeBase {
		price, err := s.Gateway.GetBasePrice(ctx, snapshot.HouseSize, snapshot.Frequency)
		if err != nil {
			s.Logger.Warn("base price fetch failed, using fallback",
				zap.String("sessionID", snapshot.SessionID),
				zap.String("houseSize", snapshot.HouseSize),
				zap.String("frequency", snapshot.Frequency),
				zap.Error(err))
			price = FallbackBasePrice
		}
		basePrice = price
	}

	// Room surcharge is only meaningful once a frequency is chosen. A result
	// of 0 is a valid answer, not an error.
	surcharge := 0.0
	if snapshot.Frequency != "" {
		total, err := s.Gateway.CalculateRoomPricing(ctx, snapshot.Rooms, snapshot.Frequency)
		if err != nil {
			return nil, err
		}
		surcharge = total
	}

	current, err := s.loadSession(ctx, snapshot.SessionID)
	if err != nil {
		return nil, err
	}
	if current.PricingGeneration != gen {
		s.Logger.Debug("stale pricing result dropped",
			zap.String("sessionID", snapshot.SessionID),
			zap.Int64("staleGeneration", gen),
			zap.Int64("currentGeneration", current.PricingGeneration))
		return current, nil
	}

	if includeBase {
		current.BasePrice = basePrice
	}
	current.RoomSurcharge = surcharge
	if err := s.saveSession(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
