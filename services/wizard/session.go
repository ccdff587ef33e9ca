// File: wizard/session.go
package wizard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cyfairmaids/models"
	"cyfairmaids/utils"
)

// StartSession creates a fresh wizard session, loads the service catalog from
// the gateway, and stores the session in Redis. The catalog is fetched once
// per session and never refreshed.
func (s *DefaultWizardService) StartSession(ctx context.Context, customerID string) (*models.WizardSession, error) {
	catalog, err := s.Gateway.GetServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalog: %w", err)
	}

	session := &models.WizardSession{
		SessionID:        uuid.New().String(),
		CurrentStep:      models.StepServicesRooms,
		BookingStatus:    models.BookingPending,
		CustomerID:       customerID,
		Catalog:          catalog,
		SelectedServices: []models.SelectedServiceEntry{},
		ALaCarteCart:     []models.ALaCarteCartEntry{},
		Promo:            models.PromoState{Status: models.PromoUnapplied},
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	s.Logger.Info("wizard session started",
		zap.String("sessionID", session.SessionID),
		zap.Int("catalogSize", len(catalog)))
	return session, nil
}

// GetSession retrieves a session by id.
func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.loadSession(ctx, sessionID)
}

// CancelSession discards a session. All accumulated state is lost.
func (s *DefaultWizardService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, utils.SessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel wizard session: %w", err)
	}
	s.Logger.Info("wizard session cancelled", zap.String("sessionID", sessionID))
	return nil
}

func (s *DefaultWizardService) loadSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.Cache.Get(ctx, utils.SessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, &SessionNotFoundError{SessionID: sessionID}
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

// saveSession writes the session back with a fresh TTL.
func (s *DefaultWizardService) saveSession(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Cache.Set(ctx, utils.SessionKeyPrefix+session.SessionID, data, utils.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

// mutateSession loads a session, applies fn, and persists the result. fn
// returning an error aborts without persisting.
func (s *DefaultWizardService) mutateSession(ctx context.Context, sessionID string, fn func(*models.WizardSession) error) (*models.WizardSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
