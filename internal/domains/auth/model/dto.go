package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// AUTH DTOs
// ========================================

// LoginRequest carries the access token the SPA obtained from Google.
type LoginRequest struct {
	AccessToken string `json:"access_token"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AccessToken, validation.Required),
	)
}
