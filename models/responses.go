package models

import "time"

// MessageResponse is the generic JSON body used for errors and simple
// acknowledgements: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UserResponse is the public descriptor of a registered user.
// It never carries the password hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse strips private fields from user.
func NewUserResponse(user User) UserResponse {
	return UserResponse{
		ID:        user.UserID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
