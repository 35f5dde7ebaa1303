package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/magabrotheeeer/datadrive/internal/models"
)

// ListServices GET /details/{plate}/services (публичный).
func (c *Client) ListServices(ctx context.Context, plate string, page, pageSize int) (*models.Page[models.CarServices], error) {
	var out models.Page[models.CarServices]
	err := c.do(ctx, call{
		resource: "services", action: "fetch services",
		method: http.MethodGet, path: "/details/" + url.PathEscape(plate) + "/services",
		query: pageQuery(page, pageSize), out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddService POST /cars/services.
func (c *Client) AddService(ctx context.Context, s models.NewService) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "services", action: "add service",
		method: http.MethodPost, path: "/cars/services",
		body: s, auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDamages GET /details/{plate}/damages (публичный).
func (c *Client) ListDamages(ctx context.Context, plate string, page, pageSize int) (*models.Page[models.CarDamages], error) {
	var out models.Page[models.CarDamages]
	err := c.do(ctx, call{
		resource: "damages", action: "fetch damages",
		method: http.MethodGet, path: "/details/" + url.PathEscape(plate) + "/damages",
		query: pageQuery(page, pageSize), out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddDamage POST /cars/damages.
func (c *Client) AddDamage(ctx context.Context, d models.NewDamage) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "damages", action: "add damage",
		method: http.MethodPost, path: "/cars/damages",
		body: d, auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCarReviews GET /reviews/car/{plate} (публичный).
func (c *Client) ListCarReviews(ctx context.Context, plate string, page, pageSize int) (*models.Page[models.CarReviews], error) {
	var out models.Page[models.CarReviews]
	err := c.do(ctx, call{
		resource: "reviews", action: "fetch reviews",
		method: http.MethodGet, path: "/reviews/car/" + url.PathEscape(plate),
		query: pageQuery(page, pageSize), out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateReview POST /reviews.
func (c *Client) CreateReview(ctx context.Context, r models.NewReview) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "reviews", action: "create review",
		method: http.MethodPost, path: "/reviews",
		body: r, auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSubscriptions GET /subscriptions (публичный каталог).
func (c *Client) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	var out []models.Subscription
	err := c.do(ctx, call{
		resource: "subscriptions", action: "fetch subscriptions",
		method: http.MethodGet, path: "/subscriptions",
		out: &out,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetActiveSubscription GET /subscriptions/active. Нет подписки: ошибка сопоставима с ErrNotFound.
func (c *Client) GetActiveSubscription(ctx context.Context) (*models.UserSubscription, error) {
	var out models.UserSubscription
	err := c.do(ctx, call{
		resource: "subscriptions", action: "fetch active subscription",
		method: http.MethodGet, path: "/subscriptions/active",
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// BuySubscription POST /subscriptions/buy.
func (c *Client) BuySubscription(ctx context.Context, name models.SubscriptionName) (*models.SubscriptionReceipt, error) {
	var out models.SubscriptionReceipt
	err := c.do(ctx, call{
		resource: "subscriptions", action: "buy subscription",
		method: http.MethodPost, path: "/subscriptions/buy",
		body: map[string]models.SubscriptionName{"subscription_name": name},
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelSubscription PUT /subscriptions/cancel.
func (c *Client) CancelSubscription(ctx context.Context) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "subscriptions", action: "cancel subscription",
		method: http.MethodPut, path: "/subscriptions/cancel",
		body: struct{}{}, auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
