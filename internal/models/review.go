package models

import "time"

// Review отзыв о завершённой поездке.
type Review struct {
	TripID    *int64     `json:"trip_id"`
	Rating    *int       `json:"rating"`
	Comment   *string    `json:"comment"`
	CreatedAt *time.Time `json:"created_at"`
}

// NewReview тело POST /reviews.
type NewReview struct {
	TripID  int64  `json:"trip_id" validate:"required,gt=0"`
	Rating  int    `json:"rating" validate:"gte=0,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=255"`
}

// CarReviews поле data ответа GET /reviews/car/{plate}.
// Emails[i] автор Reviews[i].
type CarReviews struct {
	Emails  []string `json:"emails"`
	Reviews []Review `json:"reviews"`
}
