package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cyfairmaids/gateway"
	"cyfairmaids/middleware"
	"cyfairmaids/models"
	"cyfairmaids/services/wizard"
)

// WizardHandler exposes the booking wizard over HTTP.
type WizardHandler struct {
	WizardSvc wizard.Service
	Logger    *zap.Logger
}

func NewWizardHandler(svc wizard.Service, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{WizardSvc: svc, Logger: logger}
}

// respondError maps service errors onto the error taxonomy: validation
// failures are 400s with inline feedback, missing sessions are 404s, gateway
// rejections are 502s carrying the server message verbatim when available.
func (h *WizardHandler) respondError(c *gin.Context, op string, err error) {
	var vErr *wizard.ValidationError
	var nfErr *wizard.SessionNotFoundError
	var apiErr *gateway.APIError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
	case errors.As(err, &apiErr):
		message := apiErr.Message
		if message == "" {
			message = "The booking service is temporarily unavailable. Please try again."
		}
		h.Logger.Error(op+": gateway error", zap.Int("status", apiErr.StatusCode), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": message})
	default:
		h.Logger.Error(op+": unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
	}
}

// StartSession handles POST /api/wizard/session.
func (h *WizardHandler) StartSession(c *gin.Context) {
	session, err := h.WizardSvc.StartSession(c.Request.Context(), middleware.CustomerID(c))
	if err != nil {
		h.respondError(c, "StartSession", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession handles GET /api/wizard/session/:sessionID.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.WizardSvc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, "GetSession", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSession handles DELETE /api/wizard/session/:sessionID.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	if err := h.WizardSvc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, "CancelSession", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// SetPlan handles PUT /api/wizard/session/:sessionID/plan.
func (h *WizardHandler) SetPlan(c *gin.Context) {
	var input struct {
		HouseSize string `json:"houseSize" binding:"required"`
		Frequency string `json:"frequency" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.WizardSvc.SetPlan(c.Request.Context(), c.Param("sessionID"), input.HouseSize, input.Frequency)
	if err != nil {
		h.respondError(c, "SetPlan", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetRooms handles PUT /api/wizard/session/:sessionID/rooms.
func (h *WizardHandler) SetRooms(c *gin.Context) {
	var input struct {
		Rooms models.RoomConfiguration `json:"rooms"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.WizardSvc.SetRooms(c.Request.Context(), c.Param("sessionID"), input.Rooms)
	if err != nil {
		h.respondError(c, "SetRooms", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ToggleService handles PUT /api/wizard/session/:sessionID/services.
func (h *WizardHandler) ToggleService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.WizardSvc.ToggleService(c.Request.Context(), c.Param("sessionID"), input.ServiceID)
	if err != nil {
		h.respondError(c, "ToggleService", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AddALaCarte handles POST /api/wizard/session/:sessionID/alacarte.
func (h *WizardHandler) AddALaCarte(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.WizardSvc.AddALaCarte(c.Request.Context(), c.Param("sessionID"), input.ServiceID)
	if err != nil {
		h.respondError(c, "AddALaCarte", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetALaCarteQuantity handles PUT /api/wizard/session/:sessionID/alacarte.
func (h *WizardHandler) SetALaCarteQuantity(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
		Quantity  *int   `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.WizardSvc.SetALaCarteQuantity(c.Request.Context(), c.Param("sessionID"), input.ServiceID, *input.Quantity)
	if err != nil {
		h.respondError(c, "SetALaCarteQuantity", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AvailableDates handles GET /api/wizard/available-dates.
func (h *WizardHandler) AvailableDates(c *gin.Context) {
	dates, err := h.WizardSvc.AvailableDates(c.Request.Context())
	if err != nil {
		h.respondError(c, "AvailableDates", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// SelectDate handles PUT /api/wizard/session/:sessionID/date.
func (h *WizardHandler) SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.WizardSvc.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		h.respondError(c, "SelectDate", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectSlot handles PUT /api/wizard/session/:sessionID/slot.
func (h *WizardHandler) SelectSlot(c *gin.Context) {
	var input struct {
		Slot string `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.WizardSvc.SelectSlot(c.Request.Context(), c.Param("sessionID"), input.Slot)
	if err != nil {
		h.respondError(c, "SelectSlot", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetCustomer handles PUT /api/wizard/session/:sessionID/customer.
func (h *WizardHandler) SetCustomer(c *gin.Context) {
	var input struct {
		Customer            models.CustomerInfo `json:"customer"`
		SpecialInstructions string              `json:"specialInstructions"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.WizardSvc.SetCustomer(c.Request.Context(), c.Param("sessionID"), input.Customer, input.SpecialInstructions)
	if err != nil {
		h.respondError(c, "SetCustomer", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ApplyPromo handles POST /api/wizard/session/:sessionID/promo.
func (h *WizardHandler) ApplyPromo(c *gin.Context) {
	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.WizardSvc.ApplyPromo(c.Request.Context(), c.Param("sessionID"), input.Code)
	if err != nil {
		h.respondError(c, "ApplyPromo", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RemovePromo handles DELETE /api/wizard/session/:sessionID/promo.
func (h *WizardHandler) RemovePromo(c *gin.Context) {
	session, err := h.WizardSvc.RemovePromo(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, "RemovePromo", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Advance handles POST /api/wizard/session/:sessionID/advance.
func (h *WizardHandler) Advance(c *gin.Context) {
	session, err := h.WizardSvc.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, "Advance", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Retreat handles POST /api/wizard/session/:sessionID/retreat.
func (h *WizardHandler) Retreat(c *gin.Context) {
	session, err := h.WizardSvc.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, "Retreat", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Quote handles GET /api/wizard/session/:sessionID/quote.
func (h *WizardHandler) Quote(c *gin.Context) {
	quote, err := h.WizardSvc.Quote(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, "Quote", err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Submit handles POST /api/wizard/session/:sessionID/submit. The bearer token
// is forwarded explicitly; guests go through the guest endpoint.
func (h *WizardHandler) Submit(c *gin.Context) {
	result, err := h.WizardSvc.Submit(c.Request.Context(), c.Param("sessionID"), middleware.AuthToken(c))
	if err != nil {
		h.respondError(c, "Submit", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ServiceArea handles GET /api/wizard/service-area.
func (h *WizardHandler) ServiceArea(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"zipCodes": wizard.ServiceableZips()})
}
