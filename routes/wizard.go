package routes

import (
	"github.com/gin-gonic/gin"

	"cyfairmaids/handlers"
)

// RegisterWizardRoutes registers all endpoints for the booking wizard.
func RegisterWizardRoutes(r *gin.Engine, h *handlers.WizardHandler) {
	wiz := r.Group("/api/wizard")
	{
		wiz.GET("/available-dates", h.AvailableDates)
		wiz.GET("/service-area", h.ServiceArea)

		wiz.POST("/session", h.StartSession)
		wiz.GET("/session/:sessionID", h.GetSession)
		wiz.DELETE("/session/:sessionID", h.CancelSession)

		// Step 0: services and rooms.
		wiz.PUT("/session/:sessionID/plan", h.SetPlan)
		wiz.PUT("/session/:sessionID/rooms", h.SetRooms)
		wiz.PUT("/session/:sessionID/services", h.ToggleService)
		wiz.POST("/session/:sessionID/alacarte", h.AddALaCarte)
		wiz.PUT("/session/:sessionID/alacarte", h.SetALaCarteQuantity)

		// Step 1: date and time.
		wiz.PUT("/session/:sessionID/date", h.SelectDate)
		wiz.PUT("/session/:sessionID/slot", h.SelectSlot)

		// Step 2: contact details.
		wiz.PUT("/session/:sessionID/customer", h.SetCustomer)

		// Step 3: confirm and pay.
		wiz.POST("/session/:sessionID/promo", h.ApplyPromo)
		wiz.DELETE("/session/:sessionID/promo", h.RemovePromo)
		wiz.GET("/session/:sessionID/quote", h.Quote)
		wiz.POST("/session/:sessionID/submit", h.Submit)

		// Navigation.
		wiz.POST("/session/:sessionID/advance", h.Advance)
		wiz.POST("/session/:sessionID/retreat", h.Retreat)
	}
}
