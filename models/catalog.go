package models

// ServiceCatalogItem is a cleaning service offered by the platform. The catalog
// is loaded once from the gateway when a wizard session starts and is immutable
// for the life of the session.
type ServiceCatalogItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	IsALaCarte    bool    `json:"isALaCarte"`
	ALaCartePrice float64 `json:"aLaCartePrice,omitempty"`
	DurationHours float64 `json:"durationHours,omitempty"`
}

// HouseSize and Frequency values are opaque to this service; the gateway owns
// the valid sets. Common frequencies observed in the booking flow.
const (
	FrequencyOneTime  = "one_time"
	FrequencyWeekly   = "weekly"
	FrequencyBiWeekly = "bi_weekly"
	FrequencyMonthly  = "monthly"
)
