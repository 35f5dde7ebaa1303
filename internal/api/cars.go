package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/magabrotheeeer/datadrive/internal/models"
)

// carListPath эндпоинт списка по фильтру статуса. Пустой фильтр все автомобили.
func carListPath(status models.CarStatus) (string, bool) {
	switch status {
	case "":
		return "/cars", true
	case models.CarAvailable:
		return "/available", false
	case models.CarRented:
		return "/cars/rented", true
	case models.CarMaintenance:
		return "/cars/maintenance", true
	}
	return "", false
}

// ListCars страница автомобилей. /available публичный, остальные требуют токен.
func (c *Client) ListCars(ctx context.Context, status models.CarStatus, page, pageSize int) (*models.Page[[]models.Car], error) {
	path, auth := carListPath(status)
	if path == "" {
		return nil, &Error{StatusCode: http.StatusBadRequest, Message: "status can either be available, rented or maintenance"}
	}
	var out models.Page[[]models.Car]
	err := c.do(ctx, call{
		resource: "cars", action: "fetch cars",
		method: http.MethodGet, path: path,
		query: pageQuery(page, pageSize),
		auth:  auth, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCar GET /cars/{plate}.
func (c *Client) GetCar(ctx context.Context, plate string) (*models.Car, error) {
	var out models.Car
	err := c.do(ctx, call{
		resource: "cars", action: "fetch car",
		method: http.MethodGet, path: "/cars/" + url.PathEscape(plate),
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddCar POST /cars.
func (c *Client) AddCar(ctx context.Context, car models.Car) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "cars", action: "add car",
		method: http.MethodPost, path: "/cars",
		body: car, auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCar PUT /cars/{plate}.
func (c *Client) UpdateCar(ctx context.Context, plate string, upd models.CarUpdate) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "cars", action: "update car",
		method: http.MethodPut, path: "/cars/" + url.PathEscape(plate),
		body: upd, auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCarStatus PUT /cars/{plate}/status.
func (c *Client) UpdateCarStatus(ctx context.Context, plate string, status models.CarStatus) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "cars", action: "update car status",
		method: http.MethodPut, path: "/cars/" + url.PathEscape(plate) + "/status",
		body: map[string]models.CarStatus{"status": status},
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCar DELETE /cars/{plate}.
func (c *Client) DeleteCar(ctx context.Context, plate string) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "cars", action: "delete car",
		method: http.MethodDelete, path: "/cars/" + url.PathEscape(plate),
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCarDetails GET /cars/{plate}/details.
func (c *Client) GetCarDetails(ctx context.Context, plate string) (*models.CarDetails, error) {
	var out models.CarDetails
	err := c.do(ctx, call{
		resource: "cars", action: "fetch car details",
		method: http.MethodGet, path: "/cars/" + url.PathEscape(plate) + "/details",
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
