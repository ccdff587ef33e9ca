package models

// WizardStep is one of the four linear steps of the booking wizard.
type WizardStep int

const (
	StepServicesRooms WizardStep = iota
	StepSchedule
	StepContact
	StepConfirm
)

// BookingStatus governs confirm-step rendering; it is independent of the
// current step.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingProcessing BookingStatus = "processing"
	BookingError      BookingStatus = "error"
)

// WizardSession holds the full accumulated state of one booking wizard run.
// It lives in Redis for the duration of the session and is discarded on
// successful submission or cancellation.
type WizardSession struct {
	SessionID     string        `json:"sessionId"`
	CurrentStep   WizardStep    `json:"currentStep"`
	BookingStatus BookingStatus `json:"bookingStatus"`

	// CustomerID is set when the session belongs to an authenticated customer.
	CustomerID string `json:"customerId,omitempty"`

	// Catalog is loaded once from the gateway at session start.
	Catalog []ServiceCatalogItem `json:"catalog"`

	HouseSize string            `json:"houseSize,omitempty"`
	Frequency string            `json:"frequency,omitempty"`
	Rooms     RoomConfiguration `json:"rooms"`

	SelectedServices []SelectedServiceEntry `json:"selectedServices"`
	ALaCarteCart     []ALaCarteCartEntry    `json:"aLaCarteCart"`

	BasePrice     float64 `json:"basePrice"`
	RoomSurcharge float64 `json:"roomSurcharge"`

	// PricingGeneration guards room-surcharge recomputation: a response is
	// only written back if no newer recomputation superseded it.
	PricingGeneration int64 `json:"pricingGeneration"`

	BookingDate    string   `json:"bookingDate,omitempty"`
	TimeSlot       string   `json:"timeSlot,omitempty"`
	AvailableSlots []string `json:"availableSlots,omitempty"`

	Customer            CustomerInfo `json:"customer"`
	SpecialInstructions string       `json:"specialInstructions,omitempty"`

	Promo PromoState `json:"promo"`
}

// SelectedService reports whether the given standard service is selected.
func (s *WizardSession) SelectedService(serviceID string) bool {
	for _, e := range s.SelectedServices {
		if e.ServiceID == serviceID {
			return true
		}
	}
	return false
}

// CatalogItem looks up a catalog entry by id.
func (s *WizardSession) CatalogItem(serviceID string) (ServiceCatalogItem, bool) {
	for _, item := range s.Catalog {
		if item.ID == serviceID {
			return item, true
		}
	}
	return ServiceCatalogItem{}, false
}

// Quote is the pricing summary of a session at a point in time.
type Quote struct {
	BasePrice     float64 `json:"basePrice"`
	RoomSurcharge float64 `json:"roomSurcharge"`
	ALaCarteTotal float64 `json:"aLaCarteTotal"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
}
