package models

import "github.com/google/uuid"

// Pagination defaults shared by every list operation.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageQuery holds 1-based pagination parameters.
type PageQuery struct {
	Page     int
	PageSize int
}

// Normalize clamps pagination parameters to their defaults.
func (p *PageQuery) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
}

// Offset returns the number of rows to skip.
func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// DictionaryFilter narrows dictionary list queries.
type DictionaryFilter struct {
	Type     string
	Keyword  string
	IsEnable *bool
	PageQuery
}

// DictionaryItemFilter narrows dictionary item list queries.
type DictionaryItemFilter struct {
	DictionaryID *uuid.UUID
	Keyword      string
	IsEnable     *bool
	PageQuery
}

// AccessLogFilter narrows access log list queries. IP and Path match as
// substrings.
type AccessLogFilter struct {
	IP   string
	Path string
	PageQuery
}
