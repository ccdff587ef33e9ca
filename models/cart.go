package models

// SelectedServiceEntry marks a standard service as included in the booking.
// Standard services have toggle semantics; quantity is always 1.
type SelectedServiceEntry struct {
	ServiceID string `json:"serviceId"`
	Quantity  int    `json:"quantity"`
}

// ALaCarteCartEntry is an add-on service in the cart. Entries always carry
// quantity >= 1; setting a quantity of 0 removes the entry entirely.
type ALaCarteCartEntry struct {
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
