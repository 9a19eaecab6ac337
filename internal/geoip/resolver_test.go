package geoip

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:    baseURL,
		Timeout:    2 * time.Second,
		Retries:    2,
		RetryDelay: time.Millisecond,
		CacheTTL:   time.Hour,
	}
}

func successHandler(t *testing.T, hits *int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, queryFields, r.URL.Query().Get("fields"))
		json.NewEncoder(w).Encode(Info{
			Status:     statusSuccess,
			Country:    "China",
			RegionName: "Beijing",
			City:       "Beijing",
			Query:      "1.2.3.4",
		})
	}
}

func TestResolver_Resolve_Success(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(successHandler(t, &hits))
	defer srv.Close()

	r := NewResolver(testConfig(srv.URL), zap.NewNop())
	info := r.Resolve(context.Background(), "1.2.3.4")

	require.True(t, info.Succeeded())
	assert.Equal(t, "China", info.Country)
	assert.Equal(t, "Beijing", info.City)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestResolver_Resolve_CacheHit(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(successHandler(t, &hits))
	defer srv.Close()

	r := NewResolver(testConfig(srv.URL), zap.NewNop())
	first := r.Resolve(context.Background(), "1.2.3.4")
	second := r.Resolve(context.Background(), "1.2.3.4")

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "second resolve should be served from cache")
	assert.Equal(t, 1, r.Stats().Size)
}

func TestResolver_Resolve_StaleEntryRefetched(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(successHandler(t, &hits))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.CacheTTL = time.Nanosecond
	r := NewResolver(cfg, zap.NewNop())

	r.Resolve(context.Background(), "1.2.3.4")
	time.Sleep(time.Millisecond)
	r.Resolve(context.Background(), "1.2.3.4")

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits), "stale entry must be evicted and refetched")
}

func TestResolver_Resolve_MalformedIP(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(successHandler(t, &hits))
	defer srv.Close()

	r := NewResolver(testConfig(srv.URL), zap.NewNop())

	for _, ip := range []string{"", "not-an-ip", "999.1.1.1", "1.2.3", "1.2.3.4.5", "fe80::1%eth0"} {
		t.Run(ip, func(t *testing.T) {
			info := r.Resolve(context.Background(), ip)
			assert.False(t, info.Succeeded())
			assert.Equal(t, ip, info.Query)
		})
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits), "malformed IPs must never reach the provider")
}

func TestResolver_Resolve_AbbreviatedIPv6Accepted(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(successHandler(t, &hits))
	defer srv.Close()

	r := NewResolver(testConfig(srv.URL), zap.NewNop())
	info := r.Resolve(context.Background(), "::1")

	require.True(t, info.Succeeded())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestResolver_Resolve_RetriesOn5xx(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(Info{Status: statusSuccess, Country: "Japan", Query: "8.8.8.8"})
	}))
	defer srv.Close()

	r := NewResolver(testConfig(srv.URL), zap.NewNop())
	info := r.Resolve(context.Background(), "8.8.8.8")

	require.True(t, info.Succeeded())
	assert.Equal(t, "Japan", info.Country)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestResolver_Resolve_ExhaustedRetriesDegrade(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewResolver(testConfig(srv.URL), zap.NewNop())
	info := r.Resolve(context.Background(), "8.8.8.8")

	assert.False(t, info.Succeeded())
	assert.Equal(t, "8.8.8.8", info.Query)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits), "initial attempt plus two retries")
}

func TestResolver_Resolve_ProviderFailStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Info{Status: "fail", Message: "private range", Query: "192.168.1.1"})
	}))
	defer srv.Close()

	r := NewResolver(testConfig(srv.URL), zap.NewNop())
	info := r.Resolve(context.Background(), "192.168.1.1")

	assert.False(t, info.Succeeded())
	assert.Equal(t, "192.168.1.1", info.Query)
	assert.Equal(t, 0, r.Stats().Size, "failed lookups must not be cached")
}

func TestResolver_ResolveBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Info{Status: statusSuccess, Country: "China", Query: "1.1.1.1"})
	}))
	defer srv.Close()

	r := NewResolver(testConfig(srv.URL), zap.NewNop())
	results := r.ResolveBatch(context.Background(), []string{"1.1.1.1", "bogus"})

	require.Len(t, results, 2)
	assert.True(t, results["1.1.1.1"].Succeeded())
	assert.Equal(t, "Unknown", results["bogus"].Country)
	assert.Equal(t, "Unknown", results["bogus"].City)
}

func TestResolver_ClearCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(successHandler(t, &hits))
	defer srv.Close()

	r := NewResolver(testConfig(srv.URL), zap.NewNop())
	r.Resolve(context.Background(), "1.2.3.4")
	require.Equal(t, 1, r.Stats().Size)

	r.ClearCache()
	assert.Equal(t, 0, r.Stats().Size)

	r.Resolve(context.Background(), "1.2.3.4")
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}
