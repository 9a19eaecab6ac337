package models

import (
	"time"

	"github.com/google/uuid"
)

// AccessLog records one inbound request, enriched with coarse geolocation
// when the resolver can supply it.
type AccessLog struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	IP           string     `db:"ip" json:"ip"`
	Region       *string    `db:"region" json:"region,omitempty"`
	Country      *string    `db:"country" json:"country,omitempty"`
	Province     *string    `db:"province" json:"province,omitempty"`
	City         *string    `db:"city" json:"city,omitempty"`
	Method       string     `db:"method" json:"method"`
	Path         string     `db:"path" json:"path"`
	Params       *string    `db:"params" json:"params,omitempty"`
	UserAgent    *string    `db:"user_agent" json:"userAgent,omitempty"`
	Referer      *string    `db:"referer" json:"referer,omitempty"`
	StatusCode   int        `db:"status_code" json:"statusCode"`
	ResponseTime *int       `db:"response_time" json:"responseTime,omitempty"`
	DeviceType   *string    `db:"device_type" json:"deviceType,omitempty"`
	OS           *string    `db:"os" json:"os,omitempty"`
	Browser      *string    `db:"browser" json:"browser,omitempty"`
	UserID       *uuid.UUID `db:"user_id" json:"userId,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt    *time.Time `db:"deleted_at" json:"-"`
}

// AccessLogStats is the aggregate returned by /system/stats.
type AccessLogStats struct {
	TotalLogs      int64 `json:"totalLogs"`
	TodayLogs      int64 `json:"todayLogs"`
	UniqueVisitors int64 `json:"uniqueVisitors"`
}
