package wizard

import (
	"context"
	"fmt"
	"strings"

	"cyfairmaids/models"
)

// NormalizePromoCode trims whitespace and uppercases a promo code before it is
// sent to the gateway.
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ApplyPromo validates a promo code against the current discount base
// (basePrice + aLaCarteTotal; room surcharge excluded). The promo slot moves
// through pending to applied or rejected; a rejection clears any previously
// applied promo rather than leaving it stale. A transport failure also clears
// the slot (back to unapplied) and is retryable.
func (s *DefaultWizardService) ApplyPromo(ctx context.Context, sessionID, code string) (*models.WizardSession, error) {
	code = NormalizePromoCode(code)
	if code == "" {
		return nil, NewValidationError("promo code is required")
	}

	session, err := s.mutateSession(ctx, sessionID, func(se *models.WizardSession) error {
		se.Promo = models.PromoState{Status: models.PromoPending}
		return nil
	})
	if err != nil {
		return nil, err
	}

	subtotal := roundCents(session.BasePrice + ALaCarteTotal(session.ALaCarteCart))
	verdict, err := s.Gateway.ValidatePromoCode(ctx, code, subtotal)
	if err != nil {
		// Roll the slot back to unapplied so a failed round trip never leaves
		// the session stuck in pending.
		if _, rollbackErr := s.mutateSession(ctx, sessionID, func(se *models.WizardSession) error {
			se.Promo = models.PromoState{Status: models.PromoUnapplied}
			return nil
		}); rollbackErr != nil {
			return nil, rollbackErr
		}
		return nil, fmt.Errorf("promo validation failed: %w", err)
	}

	return s.mutateSession(ctx, sessionID, func(se *models.WizardSession) error {
		if !verdict.Valid {
			message := verdict.Message
			if message == "" {
				message = "This promo code is not valid."
			}
			se.Promo = models.PromoState{Status: models.PromoRejected, Message: message}
			return nil
		}

		promo := &models.Promo{Code: code}
		if verdict.Promo != nil {
			promo.DiscountType = verdict.Promo.DiscountType
			promo.DiscountValue = verdict.Promo.DiscountValue
			promo.MaximumDiscountAmount = verdict.Promo.MaximumDiscountAmount
		} else {
			// Some gateway versions only return the computed discount; treat
			// it as a fixed amount.
			promo.DiscountType = models.DiscountFixed
			promo.DiscountValue = verdict.Discount
		}
		se.Promo = models.PromoState{Status: models.PromoApplied, Promo: promo, Message: verdict.Message}
		return nil
	})
}

// RemovePromo explicitly clears the promo slot.
func (s *DefaultWizardService) RemovePromo(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.mutateSession(ctx, sessionID, func(se *models.WizardSession) error {
		se.Promo = models.PromoState{Status: models.PromoUnapplied}
		return nil
	})
}
