package wizard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cyfairmaids/models"
	"cyfairmaids/utils"
)

// BuildBookingRequest maps the internal camelCase wizard state onto the
// gateway's snake_case booking contract.
func BuildBookingRequest(session *models.WizardSession) models.BookingRequest {
	services := make([]string, 0, len(session.SelectedServices))
	for _, e := range session.SelectedServices {
		services = append(services, e.ServiceID)
	}

	alacarte := make([]models.BookingALaCarte, 0, len(session.ALaCarteCart))
	for _, e := range session.ALaCarteCart {
		alacarte = append(alacarte, models.BookingALaCarte{
			ServiceID: e.ServiceID,
			Name:      e.ServiceName,
			Price:     e.Price,
			Quantity:  e.Quantity,
		})
	}

	var promoCode *string
	promo := appliedPromo(session)
	if promo != nil {
		code := promo.Code
		promoCode = &code
	}

	alcTotal := ALaCarteTotal(session.ALaCarteCart)
	return models.BookingRequest{
		Customer: models.BookingCustomer{
			Email:     session.Customer.Email,
			FirstName: session.Customer.FirstName,
			LastName:  session.Customer.LastName,
			Phone:     session.Customer.Phone,
			Address:   session.Customer.Address,
			City:      session.Customer.City,
			State:     session.Customer.State,
			ZipCode:   session.Customer.ZipCode,
		},
		HouseSize: session.HouseSize,
		Frequency: session.Frequency,
		BasePrice: session.BasePrice,
		Rooms: models.BookingRooms{
			Bedrooms:      session.Rooms.Bedrooms,
			Bathrooms:     session.Rooms.Bathrooms,
			HalfBathrooms: session.Rooms.HalfBathrooms,
			DiningRoom:    session.Rooms.DiningRoom,
			Kitchen:       session.Rooms.Kitchen,
			LivingRoom:    session.Rooms.LivingRoom,
			MediaRoom:     session.Rooms.MediaRoom,
			GameRoom:      session.Rooms.GameRoom,
			Office:        session.Rooms.Office,
		},
		Services:            services,
		ALaCarteServices:    alacarte,
		BookingDate:         session.BookingDate,
		TimeSlot:            session.TimeSlot,
		SpecialInstructions: session.SpecialInstructions,
		PromoCode:           promoCode,
		TotalAmount:         TotalAmount(session.BasePrice, session.RoomSurcharge, alcTotal, promo),
	}
}

// Submit finalizes the booking in one atomic request. Only reachable from the
// confirmation step. On success the session is discarded and the gateway
// becomes the source of truth; on failure the session keeps every collected
// field so the user can retry without re-entering data.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID, token string) (*models.BookingResult, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CurrentStep != models.StepConfirm {
		return nil, NewValidationError("booking can only be submitted from the confirmation step")
	}
	if session.BookingStatus == models.BookingProcessing {
		return nil, NewValidationError("a submission is already in progress")
	}

	session.BookingStatus = models.BookingProcessing
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	req := BuildBookingRequest(session)

	var result *models.BookingResult
	if token != "" {
		result, err = s.Gateway.CreateBooking(ctx, req, token)
	} else {
		result, err = s.Gateway.CreateGuestBooking(ctx, req)
	}
	if err != nil {
		session.BookingStatus = models.BookingError
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			s.Logger.Error("failed to record submission error state",
				zap.String("sessionID", sessionID), zap.Error(saveErr))
		}
		return nil, fmt.Errorf("booking submission failed: %w", err)
	}

	if err := s.Cache.Del(ctx, utils.SessionKeyPrefix+sessionID).Err(); err != nil {
		s.Logger.Warn("failed to discard submitted session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	s.Logger.Info("booking submitted",
		zap.String("sessionID", sessionID),
		zap.String("bookingID", result.BookingID),
		zap.Bool("guest", token == ""))
	return result, nil
}
