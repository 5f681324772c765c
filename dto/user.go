package dto

import (
	"main/model"
	"time"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
}

type LoginRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	TwoFactorCode string `json:"two_factor_code,omitempty"`
}

// UserProfileResponse is the read view of an account. The password hash never
// leaves the repository layer.
type UserProfileResponse struct {
	UserID           string    `json:"user_id"`
	Email            string    `json:"email"`
	CreatedAt        time.Time `json:"created_at"`
	TwoFactorEnabled bool      `json:"two_factor_enabled"`
}

func ToUserProfileResponse(user *model.User) UserProfileResponse {
	return UserProfileResponse{
		UserID:           user.UserID,
		Email:            user.Email,
		CreatedAt:        user.CreatedAt,
		TwoFactorEnabled: user.TwoFactorEnabled,
	}
}

type AuthResponse struct {
	Token   string              `json:"token"`
	Refresh string              `json:"refresh"`
	User    UserProfileResponse `json:"user"`
}
