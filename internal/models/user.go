package models

import "time"

// RoleAdmin значение claim role у администратора.
const RoleAdmin = "Admin"

// User профиль пользователя. DrivingBehavior пересчитывается бэкендом
// после каждой завершённой поездки.
type User struct {
	Email           string    `json:"email"`
	UserName        string    `json:"user_name"`
	FullName        string    `json:"full_name"`
	DrivingBehavior *float64  `json:"driving_behavior,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Credentials тело POST /login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email,max=45"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

// Signup тело POST /signup.
type Signup struct {
	Email    string `json:"email" validate:"required,email,max=45"`
	Username string `json:"username" validate:"required,max=45"`
	FullName string `json:"full_name" validate:"omitempty,max=45"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

// TokenResponse ответ login/signup.
type TokenResponse struct {
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token"`
}
