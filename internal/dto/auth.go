package dto

import "github.com/betdesk/backoffice/internal/models"

type RegisterRequest struct {
	RegNumber string `json:"regNumber"`
	FullName  string `json:"fullName"`
	Username  string `json:"username"`
	Whatsapp  string `json:"whatsapp"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// LoginRequest carries the identifier in the username field; it may hold
// either the username or the whatsapp number.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UpdateUserRequest uses pointers so absent fields leave the user unchanged.
type UpdateUserRequest struct {
	Password *string `json:"password"`
	IsActive *bool   `json:"isActive"`
}

// UserStatusResponse always carries both flags; a deactivated user must still
// report isActive false.
type UserStatusResponse struct {
	Exists   bool `json:"exists"`
	IsActive bool `json:"isActive"`
}
