package wizard

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"cyfairmaids/gateway"
	"cyfairmaids/models"
)

// Gateway is the slice of the remote pricing/availability gateway the wizard
// depends on.
type Gateway interface {
	GetServices(ctx context.Context) ([]models.ServiceCatalogItem, error)
	GetAvailableDates(ctx context.Context) ([]string, error)
	GetTimeSlots(ctx context.Context, date string) ([]string, error)
	GetBasePrice(ctx context.Context, houseSize, frequency string) (float64, error)
	CalculateRoomPricing(ctx context.Context, rooms models.RoomConfiguration, frequency string) (float64, error)
	ValidatePromoCode(ctx context.Context, code string, subtotal float64) (*gateway.PromoValidation, error)
	CreateBooking(ctx context.Context, req models.BookingRequest, token string) (*models.BookingResult, error)
	CreateGuestBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
}

// Service defines the interface for managing a stateful booking wizard session.
type Service interface {
	StartSession(ctx context.Context, customerID string) (*models.WizardSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error)
	CancelSession(ctx context.Context, sessionID string) error

	SetPlan(ctx context.Context, sessionID, houseSize, frequency string) (*models.WizardSession, error)
	SetRooms(ctx context.Context, sessionID string, rooms models.RoomConfiguration) (*models.WizardSession, error)
	ToggleService(ctx context.Context, sessionID, serviceID string) (*models.WizardSession, error)
	AddALaCarte(ctx context.Context, sessionID, serviceID string) (*models.WizardSession, error)
	SetALaCarteQuantity(ctx context.Context, sessionID, serviceID string, quantity int) (*models.WizardSession, error)

	AvailableDates(ctx context.Context) ([]string, error)
	SelectDate(ctx context.Context, sessionID, date string) (*models.WizardSession, error)
	SelectSlot(ctx context.Context, sessionID, slot string) (*models.WizardSession, error)

	SetCustomer(ctx context.Context, sessionID string, customer models.CustomerInfo, instructions string) (*models.WizardSession, error)

	ApplyPromo(ctx context.Context, sessionID, code string) (*models.WizardSession, error)
	RemovePromo(ctx context.Context, sessionID string) (*models.WizardSession, error)

	Advance(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Retreat(ctx context.Context, sessionID string) (*models.WizardSession, error)

	Quote(ctx context.Context, sessionID string) (*models.Quote, error)
	Submit(ctx context.Context, sessionID, token string) (*models.BookingResult, error)
}

// DefaultWizardService implements Service on top of a Redis session store and
// the remote gateway.
type DefaultWizardService struct {
	Gateway Gateway
	Cache   *redis.Client
	Logger  *zap.Logger
	Tasks   *asynq.Client
}
