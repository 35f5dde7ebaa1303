package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/magabrotheeeer/datadrive/internal/models"
)

// StartTrip POST /trips/start.
func (c *Client) StartTrip(ctx context.Context, plate string) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "trips", action: "start trip",
		method: http.MethodPost, path: "/trips/start",
		body: map[string]string{"license_plate": plate},
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// StopTrip POST /trips/stop.
func (c *Client) StopTrip(ctx context.Context, req models.StopTripRequest) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "trips", action: "stop trip",
		method: http.MethodPost, path: "/trips/stop",
		body: req, auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTrips GET /trips?page=&page_size=.
func (c *Client) ListTrips(ctx context.Context, page, pageSize int) (*models.Page[[]models.Trip], error) {
	var out models.Page[[]models.Trip]
	err := c.do(ctx, call{
		resource: "trips", action: "fetch trips",
		method: http.MethodGet, path: "/trips",
		query: pageQuery(page, pageSize),
		auth:  true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetActiveTrip GET /trips/active. Нет активной поездки: ошибка сопоставима с ErrNotFound.
func (c *Client) GetActiveTrip(ctx context.Context) (*models.Trip, error) {
	var out models.Trip
	err := c.do(ctx, call{
		resource: "trips", action: "fetch active trip",
		method: http.MethodGet, path: "/trips/active",
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTripDetails GET /trips/details/{id}: поездка и стоимость километра автомобиля.
func (c *Client) GetTripDetails(ctx context.Context, id int64) (*models.TripCost, error) {
	var out models.TripCost
	err := c.do(ctx, call{
		resource: "trips", action: "fetch trip details",
		method: http.MethodGet, path: "/trips/details/" + strconv.FormatInt(id, 10),
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
