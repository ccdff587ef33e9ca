package wizard

import (
	"context"
	"fmt"

	"cyfairmaids/models"
)

// ToggleService adds a standard service to the selection, or removes it when
// already selected. Standard services never carry a quantity beyond 1.
func (s *DefaultWizardService) ToggleService(ctx context.Context, sessionID, serviceID string) (*models.WizardSession, error) {
	return s.mutateSession(ctx, sessionID, func(session *models.WizardSession) error {
		item, ok := session.CatalogItem(serviceID)
		if !ok {
			return NewValidationError(fmt.Sprintf("unknown service %q", serviceID))
		}
		if item.IsALaCarte {
			return NewValidationError(fmt.Sprintf("service %q is an add-on, not a standard service", serviceID))
		}

		for i, e := range session.SelectedServices {
			if e.ServiceID == serviceID {
				session.SelectedServices = append(session.SelectedServices[:i], session.SelectedServices[i+1:]...)
				return nil
			}
		}
		session.SelectedServices = append(session.SelectedServices, models.SelectedServiceEntry{
			ServiceID: serviceID,
			Quantity:  1,
		})
		return nil
	})
}

// AddALaCarte inserts an add-on with quantity 1, or bumps its quantity when
// already in the cart.
func (s *DefaultWizardService) AddALaCarte(ctx context.Context, sessionID, serviceID string) (*models.WizardSession, error) {
	return s.mutateSession(ctx, sessionID, func(session *models.WizardSession) error {
		item, ok := session.CatalogItem(serviceID)
		if !ok {
			return NewValidationError(fmt.Sprintf("unknown service %q", serviceID))
		}
		if !item.IsALaCarte {
			return NewValidationError(fmt.Sprintf("service %q is not an add-on", serviceID))
		}

		for i := range session.ALaCarteCart {
			if session.ALaCarteCart[i].ServiceID == serviceID {
				session.ALaCarteCart[i].Quantity++
				return nil
			}
		}
		session.ALaCarteCart = append(session.ALaCarteCart, models.ALaCarteCartEntry{
			ServiceID:   item.ID,
			ServiceName: item.Name,
			Price:       item.ALaCartePrice,
			Quantity:    1,
		})
		return nil
	})
}

// SetALaCarteQuantity sets an add-on's quantity. Quantity 0 removes the entry;
// negative quantities are rejected.
func (s *DefaultWizardService) SetALaCarteQuantity(ctx context.Context, sessionID, serviceID string, quantity int) (*models.WizardSession, error) {
	return s.mutateSession(ctx, sessionID, func(session *models.WizardSession) error {
		if quantity < 0 {
			return NewValidationError("quantity cannot be negative")
		}
		for i := range session.ALaCarteCart {
			if session.ALaCarteCart[i].ServiceID != serviceID {
				continue
			}
			if quantity == 0 {
				session.ALaCarteCart = append(session.ALaCarteCart[:i], session.ALaCarteCart[i+1:]...)
			} else {
				session.ALaCarteCart[i].Quantity = quantity
			}
			return nil
		}
		return NewValidationError(fmt.Sprintf("service %q is not in the cart", serviceID))
	})
}
