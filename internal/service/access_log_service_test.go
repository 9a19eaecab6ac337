package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog-admin-server/internal/geoip"
	"blog-admin-server/internal/interfaces/mocks"
	"blog-admin-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGeoResolver(t *testing.T, handler http.HandlerFunc) *geoip.Resolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return geoip.NewResolver(geoip.Config{
		BaseURL:    srv.URL,
		Timeout:    time.Second,
		Retries:    0,
		RetryDelay: time.Millisecond,
		CacheTTL:   time.Hour,
	}, zap.NewNop())
}

func TestAccessLogService_Record_Enriches(t *testing.T) {
	resolver := newGeoResolver(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status":     "success",
			"country":    "China",
			"region":     "BJ",
			"regionName": "Beijing",
			"city":       "Beijing",
			"query":      "1.2.3.4",
		})
	})

	repo := new(mocks.AccessLogRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.AccessLog) bool {
		return e.Country != nil && *e.Country == "China" &&
			e.Province != nil && *e.Province == "Beijing" &&
			e.City != nil && *e.City == "Beijing"
	})).Return(nil)

	svc := NewAccessLogService(repo, resolver, zap.NewNop())
	err := svc.Record(context.Background(), &models.AccessLog{IP: "1.2.3.4", Method: "GET", Path: "/"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAccessLogService_Record_GeoFailureDegrades(t *testing.T) {
	resolver := newGeoResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	repo := new(mocks.AccessLogRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.AccessLog) bool {
		return e.Country == nil && e.City == nil
	})).Return(nil)

	svc := NewAccessLogService(repo, resolver, zap.NewNop())
	err := svc.Record(context.Background(), &models.AccessLog{IP: "1.2.3.4", Method: "GET", Path: "/"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAccessLogService_Record_NilResolver(t *testing.T) {
	repo := new(mocks.AccessLogRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.AccessLog")).Return(nil)

	svc := NewAccessLogService(repo, nil, zap.NewNop())
	err := svc.Record(context.Background(), &models.AccessLog{IP: "1.2.3.4", Method: "GET", Path: "/"})

	require.NoError(t, err)
}

func TestAccessLogService_Record_RetriesWithoutGeo(t *testing.T) {
	resolver := newGeoResolver(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "country": "China", "query": "1.2.3.4"})
	})

	repo := new(mocks.AccessLogRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.AccessLog) bool {
		return e.Country != nil
	})).Return(assert.AnError).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.AccessLog) bool {
		return e.Country == nil
	})).Return(nil).Once()

	svc := NewAccessLogService(repo, resolver, zap.NewNop())
	err := svc.Record(context.Background(), &models.AccessLog{IP: "1.2.3.4", Method: "GET", Path: "/"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAccessLogService_List_NormalizesPagination(t *testing.T) {
	repo := new(mocks.AccessLogRepository)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f models.AccessLogFilter) bool {
		return f.Page == models.DefaultPage && f.PageSize == models.DefaultPageSize
	})).Return([]models.AccessLog{}, int64(0), nil)

	svc := NewAccessLogService(repo, nil, zap.NewNop())
	_, _, err := svc.List(context.Background(), models.AccessLogFilter{})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAccessLogService_Stats(t *testing.T) {
	repo := new(mocks.AccessLogRepository)
	repo.On("Count", mock.Anything).Return(int64(120), nil)
	repo.On("CountSince", mock.Anything, mock.MatchedBy(func(since time.Time) bool {
		now := time.Now()
		return since.Year() == now.Year() && since.YearDay() == now.YearDay() &&
			since.Hour() == 0 && since.Minute() == 0
	})).Return(int64(7), nil)
	repo.On("CountDistinctIPs", mock.Anything).Return(int64(42), nil)

	svc := NewAccessLogService(repo, nil, zap.NewNop())
	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalLogs)
	assert.Equal(t, int64(7), stats.TodayLogs)
	assert.Equal(t, int64(42), stats.UniqueVisitors)
}
