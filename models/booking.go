package models

// BookingRequest is the wire contract for booking submission. The gateway API
// speaks snake_case; this is the only place the internal camelCase state is
// translated.
type BookingRequest struct {
	Customer            BookingCustomer    `json:"customer"`
	HouseSize           string             `json:"house_size"`
	Frequency           string             `json:"frequency"`
	BasePrice           float64            `json:"base_price"`
	Rooms               BookingRooms       `json:"rooms"`
	Services            []string           `json:"services"`
	ALaCarteServices    []BookingALaCarte  `json:"a_la_carte_services"`
	BookingDate         string             `json:"booking_date"`
	TimeSlot            string             `json:"time_slot"`
	SpecialInstructions string             `json:"special_instructions"`
	PromoCode           *string            `json:"promo_code"`
	TotalAmount         float64            `json:"total_amount"`
}

// BookingCustomer is the snake_case customer block of a BookingRequest.
type BookingCustomer struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
}

// BookingRooms is the snake_case room block of a BookingRequest.
type BookingRooms struct {
	Bedrooms      int  `json:"bedrooms"`
	Bathrooms     int  `json:"bathrooms"`
	HalfBathrooms int  `json:"half_bathrooms"`
	DiningRoom    bool `json:"dining_room"`
	Kitchen       bool `json:"kitchen"`
	LivingRoom    bool `json:"living_room"`
	MediaRoom     bool `json:"media_room"`
	GameRoom      bool `json:"game_room"`
	Office        bool `json:"office"`
}

// BookingALaCarte is one add-on line of a BookingRequest.
type BookingALaCarte struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// BookingResult is what the gateway returns for a successful submission. The
// server is the source of truth from this point on; the id is used for
// downstream routing only.
type BookingResult struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}
