package gateway

import (
	"context"
	"fmt"
	"net/url"

	"cyfairmaids/models"
)

type basePriceResponse struct {
	Price float64 `json:"price"`
}

// GetBasePrice fetches the base price for a house size + frequency pair.
func (c *Client) GetBasePrice(ctx context.Context, houseSize, frequency string) (float64, error) {
	var resp basePriceResponse
	path := fmt.Sprintf("/pricing/%s/%s", url.PathEscape(houseSize), url.PathEscape(frequency))
	if err := c.getJSON(ctx, path, "", &resp); err != nil {
		return 0, err
	}
	return resp.Price, nil
}

type roomPricingRequest struct {
	Rooms     models.BookingRooms `json:"rooms"`
	Frequency string              `json:"frequency"`
}

type roomPricingResponse struct {
	Total float64 `json:"total"`
}

// CalculateRoomPricing fetches the surcharge for a room configuration at the
// given frequency. A total of 0 is a valid answer, not an error.
func (c *Client) CalculateRoomPricing(ctx context.Context, rooms models.RoomConfiguration, frequency string) (float64, error) {
	req := roomPricingRequest{
		Rooms: models.BookingRooms{
			Bedrooms:      rooms.Bedrooms,
			Bathrooms:     rooms.Bathrooms,
			HalfBathrooms: rooms.HalfBathrooms,
			DiningRoom:    rooms.DiningRoom,
			Kitchen:       rooms.Kitchen,
			LivingRoom:    rooms.LivingRoom,
			MediaRoom:     rooms.MediaRoom,
			GameRoom:      rooms.GameRoom,
			Office:        rooms.Office,
		},
		Frequency: frequency,
	}
	var resp roomPricingResponse
	if err := c.postJSON(ctx, "/calculate-room-pricing", "", req, &resp); err != nil {
		return 0, err
	}
	return resp.Total, nil
}

type promoValidationRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

// PromoValidation is the gateway's verdict on a promo code.
type PromoValidation struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"`
	Message  string  `json:"message"`
	Promo    *struct {
		Code                  string   `json:"code"`
		DiscountType          string   `json:"discount_type"`
		DiscountValue         float64  `json:"discount_value"`
		MaximumDiscountAmount *float64 `json:"maximum_discount_amount"`
	} `json:"promo"`
}

// ValidatePromoCode asks the gateway to validate a promo code against a
// subtotal. The code must already be normalized by the caller.
func (c *Client) ValidatePromoCode(ctx context.Context, code string, subtotal float64) (*PromoValidation, error) {
	var resp PromoValidation
	req := promoValidationRequest{Code: code, Subtotal: subtotal}
	if err := c.postJSON(ctx, "/validate-promo-code", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
