package models

// PromoStatus tracks the promo-code state machine for a wizard session.
type PromoStatus string

const (
	PromoUnapplied PromoStatus = "unapplied"
	PromoPending   PromoStatus = "pending"
	PromoApplied   PromoStatus = "applied"
	PromoRejected  PromoStatus = "rejected"
)

// Discount types returned by the gateway.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Promo is a server-validated discount token. It is only ever set after a
// successful validation round trip.
type Promo struct {
	Code                  string   `json:"code"`
	DiscountType          string   `json:"discountType"`
	DiscountValue         float64  `json:"discountValue"`
	MaximumDiscountAmount *float64 `json:"maximumDiscountAmount,omitempty"`
}

// PromoState is the current promo slot of a session: the state-machine status,
// the applied promo (status "applied" only), and the last gateway message.
type PromoState struct {
	Status  PromoStatus `json:"status"`
	Promo   *Promo      `json:"promo,omitempty"`
	Message string      `json:"message,omitempty"`
}
