package model

import "errors"

// Error codes
const (
	ErrCodeNotFound       = "NEWS001"
	ErrCodeInvalidID      = "NEWS002"
	ErrCodeDuplicateTitle = "NEWS003"
	ErrCodeForbidden      = "NEWS004"
	ErrCodeValidation     = "NEWS005"
	ErrCodeStore          = "NEWS006"
)

// Errors
var (
	ErrArticleNotFound = errors.New("news article not found")
	ErrInvalidID       = errors.New("invalid ID format")
	ErrDuplicateTitle  = errors.New("an article with this title already exists")
	ErrForbidden       = errors.New("only the author may modify this article")
)
