package routes

import (
	"github.com/gin-gonic/gin"

	"cyfairmaids/handlers"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, wizardHandler *handlers.WizardHandler) {
	r.GET("/health", handlers.HealthHandler)
	RegisterWizardRoutes(r, wizardHandler)
}
