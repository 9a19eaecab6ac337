package handler

import (
	"regexp"

	"github.com/google/uuid"
)

// CreateDictionaryRequest is the POST /dictionary/create body.
type CreateDictionaryRequest struct {
	Type        string     `json:"type" binding:"required,max=50"`
	Name        string     `json:"name" binding:"required,max=100"`
	Description *string    `json:"description" binding:"omitempty,max=255"`
	IsEnable    *bool      `json:"isEnable"`
	Sort        *int       `json:"sort"`
	ParentID    *uuid.UUID `json:"parentId"`
}

// UpdateDictionaryRequest is the PATCH /dictionary/:id body. All fields are
// optional; absent fields stay untouched.
type UpdateDictionaryRequest struct {
	Type        *string    `json:"type" binding:"omitempty,max=50"`
	Name        *string    `json:"name" binding:"omitempty,max=100"`
	Description *string    `json:"description" binding:"omitempty,max=255"`
	IsEnable    *bool      `json:"isEnable"`
	Sort        *int       `json:"sort"`
	ParentID    *uuid.UUID `json:"parentId"`
}

// BatchRemoveRequest is the body of the batch delete endpoints.
type BatchRemoveRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// CreateDictionaryItemRequest is the POST /dictionary-item/create body.
// Value is a pointer so an explicit zero survives required validation.
type CreateDictionaryItemRequest struct {
	DictionaryID uuid.UUID `json:"dictionaryId" binding:"required"`
	Name         string    `json:"name" binding:"required,max=100"`
	Value        *int      `json:"value" binding:"required,gte=0"`
	Description  *string   `json:"description" binding:"omitempty,max=255"`
	IsEnable     *bool     `json:"isEnable"`
	Sort         *int      `json:"sort"`
}

// UpdateDictionaryItemRequest is the PATCH /dictionary-item/:id body.
type UpdateDictionaryItemRequest struct {
	DictionaryID *uuid.UUID `json:"dictionaryId"`
	Name         *string    `json:"name" binding:"omitempty,max=100"`
	Value        *int       `json:"value" binding:"omitempty,gte=0"`
	Description  *string    `json:"description" binding:"omitempty,max=255"`
	IsEnable     *bool      `json:"isEnable"`
	Sort         *int       `json:"sort"`
}

// ListQuery carries the shared pagination query parameters. The system
// endpoints use limit, everything else pageSize; both are accepted.
type ListQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
	Limit    int `form:"limit"`
}

// Size returns pageSize with limit as fallback.
func (q ListQuery) Size() int {
	if q.PageSize > 0 {
		return q.PageSize
	}
	return q.Limit
}

// DictionaryListQuery is the GET /dictionary/list query string.
type DictionaryListQuery struct {
	ListQuery
	Type     string `form:"type"`
	Keyword  string `form:"keyword"`
	IsEnable *bool  `form:"isEnable"`
}

// DictionaryItemListQuery is the GET /dictionary-item/list query string.
type DictionaryItemListQuery struct {
	ListQuery
	DictionaryID *uuid.UUID `form:"dictionaryId"`
	Keyword      string     `form:"keyword"`
	IsEnable     *bool      `form:"isEnable"`
}

// AccessLogListQuery is the GET /system/access-logs query string.
type AccessLogListQuery struct {
	ListQuery
	IP   string `form:"ip"`
	Path string `form:"path"`
}

// RegisterRequest is the POST /user/auth/register body.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Nickname string `json:"nickname" binding:"required"`
}

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	hasLetter       = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
)

// Validate applies the registration rules that gin binding tags cannot
// express. It returns an empty string when the request is valid.
func (r RegisterRequest) Validate() string {
	if !usernamePattern.MatchString(r.Username) {
		return "用户名长度为3-20位，只能包含字母、数字和下划线"
	}
	if len(r.Password) < 6 || len(r.Password) > 20 {
		return "密码长度为6-20位"
	}
	if !hasLetter.MatchString(r.Password) || !hasDigit.MatchString(r.Password) {
		return "密码必须包含字母和数字"
	}
	if n := len([]rune(r.Nickname)); n < 2 || n > 20 {
		return "昵称长度为2-20位"
	}
	return ""
}

// LoginRequest is the POST /user/auth/login body.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GenerateTokenRequest is the body of the token issuance endpoints.
type GenerateTokenRequest struct {
	Sub      string   `json:"sub" binding:"required"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// TokenRequest carries a raw token for verify/decode.
type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// CreateAccessLogRequest is the POST /system/access-logs body.
type CreateAccessLogRequest struct {
	IP           string     `json:"ip" binding:"required"`
	Method       string     `json:"method" binding:"required"`
	Path         string     `json:"path" binding:"required"`
	Params       *string    `json:"params"`
	UserAgent    *string    `json:"userAgent"`
	Referer      *string    `json:"referer"`
	StatusCode   int        `json:"statusCode"`
	ResponseTime *int       `json:"responseTime"`
	DeviceType   *string    `json:"deviceType"`
	OS           *string    `json:"os"`
	Browser      *string    `json:"browser"`
	UserID       *uuid.UUID `json:"userId"`
}
