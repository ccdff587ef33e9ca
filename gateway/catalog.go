package gateway

import (
	"context"
	"net/url"

	"cyfairmaids/models"
)

type servicesResponse struct {
	Services []struct {
		ID            string  `json:"id"`
		Name          string  `json:"name"`
		Description   string  `json:"description"`
		IsALaCarte    bool    `json:"is_a_la_carte"`
		ALaCartePrice float64 `json:"a_la_carte_price"`
		DurationHours float64 `json:"duration_hours"`
	} `json:"services"`
}

// GetServices fetches the service catalog.
func (c *Client) GetServices(ctx context.Context) ([]models.ServiceCatalogItem, error) {
	var resp servicesResponse
	if err := c.getJSON(ctx, "/services", "", &resp); err != nil {
		return nil, err
	}
	catalog := make([]models.ServiceCatalogItem, 0, len(resp.Services))
	for _, svc := range resp.Services {
		catalog = append(catalog, models.ServiceCatalogItem{
			ID:            svc.ID,
			Name:          svc.Name,
			Description:   svc.Description,
			IsALaCarte:    svc.IsALaCarte,
			ALaCartePrice: svc.ALaCartePrice,
			DurationHours: svc.DurationHours,
		})
	}
	return catalog, nil
}

type availableDatesResponse struct {
	Dates []string `json:"dates"`
}

// GetAvailableDates fetches the bookable dates (YYYY-MM-DD).
func (c *Client) GetAvailableDates(ctx context.Context) ([]string, error) {
	var resp availableDatesResponse
	if err := c.getJSON(ctx, "/available-dates", "", &resp); err != nil {
		return nil, err
	}
	return resp.Dates, nil
}

type timeSlotsResponse struct {
	TimeSlots []string `json:"time_slots"`
}

// GetTimeSlots fetches the open time slots for one date.
func (c *Client) GetTimeSlots(ctx context.Context, date string) ([]string, error) {
	var resp timeSlotsResponse
	path := "/time-slots?date=" + url.QueryEscape(date)
	if err := c.getJSON(ctx, path, "", &resp); err != nil {
		return nil, err
	}
	return resp.TimeSlots, nil
}
