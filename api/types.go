package api

import "github.com/royatali/authkit/jwt"

// SignupRequest defines a public type used by authkit APIs.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest defines a public type used by authkit APIs.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse defines a public type used by authkit APIs.
//
// RefreshToken is the long-lived credential; it goes straight into the
// secure store and nowhere else.
type LoginResponse struct {
	Message      string `json:"message,omitempty"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshRequest defines a public type used by authkit APIs.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse defines a public type used by authkit APIs.
type RefreshResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

// ForgotPasswordRequest defines a public type used by authkit APIs.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordResponse defines a public type used by authkit APIs.
type ForgotPasswordResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ResetPasswordRequest defines a public type used by authkit APIs.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
	Token       string `json:"token"`
}

// MessageResponse defines a public type used by authkit APIs.
//
// MessageResponse is the generic acknowledgement body several endpoints
// return.
type MessageResponse struct {
	Message string `json:"message"`
}

// Bio defines a public type used by authkit APIs.
type Bio struct {
	ID             string `json:"_id"`
	WelcomeMessage string `json:"welcomeMessage"`
	Avatar         string `json:"avatar"`
}

// User defines a public type used by authkit APIs.
type User struct {
	ID        string     `json:"_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Roles     []jwt.Role `json:"roles"`
	Bio       Bio        `json:"bio"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
}

// UserUpdate defines a public type used by authkit APIs.
//
// Nil fields are omitted from the request body, so an update only touches
// what the caller set.
type UserUpdate struct {
	Username       *string `json:"username,omitempty"`
	Email          *string `json:"email,omitempty"`
	WelcomeMessage *string `json:"welcomeMessage,omitempty"`
	Avatar         *string `json:"avatar,omitempty"`
}
