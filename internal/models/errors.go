package models

import "errors"

// Application-wide standard errors
var (
	// Common resource errors
	ErrNotFound               = errors.New("resource not found")
	ErrDictionaryNotFound     = errors.New("dictionary not found")
	ErrDictionaryItemNotFound = errors.New("dictionary item not found")
	ErrAccessLogNotFound      = errors.New("access log not found")

	// Uniqueness conflicts
	ErrDictionaryTypeTaken = errors.New("dictionary type already exists")
	ErrDictionaryNameTaken = errors.New("dictionary name already exists")
	ErrItemNameTaken       = errors.New("item name already exists in this dictionary")
	ErrItemValueTaken      = errors.New("item value already exists in this dictionary")

	// User & authentication errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("user with this username already exists")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Token errors
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")

	// General request/server errors
	ErrEmptyBatch     = errors.New("no ids provided for batch operation")
	ErrInvalidInput   = errors.New("invalid input data")
	ErrInternalServer = errors.New("internal server error")
)
