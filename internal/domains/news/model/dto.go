package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// NEWS DTOs
// ========================================

// CreateArticleRequest is the POST body. Timestamp comes from the client so
// the displayed creation time matches the user's clock; it is stored verbatim.
type CreateArticleRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Category, validation.Required, validation.In(CategoryValues()...)),
		validation.Field(&r.Timestamp, validation.Required, validation.Date(time.RFC3339)),
	)
}

// UpdateArticleRequest is the PUT body. Author and timestamp are not
// accepted: they are preserved from the stored record.
type UpdateArticleRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Category, validation.Required, validation.In(CategoryValues()...)),
	)
}
