package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"sync"
	"time"

	"go.uber.org/zap"
)

const statusSuccess = "success"

// queryFields is the field list requested from ip-api.com.
const queryFields = "status,message,country,countryCode,region,regionName,city,zip,lat,lon,timezone,isp,org,as,query"

// Info is the geolocation payload for one IP. Field names follow the
// ip-api.com JSON response.
type Info struct {
	Status      string  `json:"status"`
	Message     string  `json:"message,omitempty"`
	Country     string  `json:"country,omitempty"`
	CountryCode string  `json:"countryCode,omitempty"`
	Region      string  `json:"region,omitempty"`
	RegionName  string  `json:"regionName,omitempty"`
	City        string  `json:"city,omitempty"`
	Zip         string  `json:"zip,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lon         float64 `json:"lon,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	ISP         string  `json:"isp,omitempty"`
	Org         string  `json:"org,omitempty"`
	AS          string  `json:"as,omitempty"`
	Query       string  `json:"query"`
}

// Succeeded reports whether the lookup returned real location data.
func (i *Info) Succeeded() bool {
	return i.Status == statusSuccess
}

// CacheStats summarizes the in-memory cache contents.
type CacheStats struct {
	Size int      `json:"size"`
	Keys []string `json:"keys"`
}

type cacheEntry struct {
	info     *Info
	cachedAt time.Time
}

// Config carries the resolver tunables.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	CacheTTL   time.Duration
}

// Resolver looks up coarse geolocation for client IPs against ip-api.com,
// with an in-memory TTL cache. Lookups never fail hard: any error degrades
// to a "fail" Info so callers can log the request regardless.
type Resolver struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// NewResolver creates a Resolver with its own HTTP client bound to the
// configured timeout.
func NewResolver(cfg Config, logger *zap.Logger) *Resolver {
	return &Resolver{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.Named("GeoIPResolver"),
		cache:  make(map[string]cacheEntry),
	}
}

// failInfo is the degraded result used whenever a lookup cannot succeed.
func failInfo(ip string) *Info {
	return &Info{Status: "fail", Query: ip}
}

// validIP accepts IPv4 dotted quads and IPv6 literals. Zoned literals
// (fe80::1%eth0) are host-local and meaningless to the provider, so they
// count as malformed.
func validIP(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	return addr.Zone() == ""
}

// Resolve returns geolocation info for one IP. Results are served from the
// cache while younger than the TTL; stale entries are evicted and refetched.
func (r *Resolver) Resolve(ctx context.Context, ip string) *Info {
	if !validIP(ip) {
		r.logger.Debug("Skipping geolocation for malformed IP", zap.String("ip", ip))
		return failInfo(ip)
	}

	if info, ok := r.cached(ip); ok {
		return info
	}

	info, err := r.fetch(ctx, ip)
	if err != nil {
		r.logger.Warn("Geolocation lookup failed", zap.String("ip", ip), zap.Error(err))
		return failInfo(ip)
	}
	if !info.Succeeded() {
		r.logger.Debug("Geolocation lookup rejected by provider",
			zap.String("ip", ip), zap.String("message", info.Message))
		return failInfo(ip)
	}

	r.mu.Lock()
	r.cache[ip] = cacheEntry{info: info, cachedAt: time.Now()}
	r.mu.Unlock()
	return info
}

// ResolveBatch resolves a set of IPs concurrently. Failed lookups come back
// as "Unknown" placeholders so the result always has one entry per input IP.
func (r *Resolver) ResolveBatch(ctx context.Context, ips []string) map[string]*Info {
	results := make(map[string]*Info, len(ips))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, ip := range ips {
		wg.Add(1)
		go func(ip string) {
			defer wg.Done()
			info := r.Resolve(ctx, ip)
			if !info.Succeeded() {
				info = &Info{
					Status:  "fail",
					Country: "Unknown",
					Region:  "Unknown",
					City:    "Unknown",
					Query:   ip,
				}
			}
			mu.Lock()
			results[ip] = info
			mu.Unlock()
		}(ip)
	}
	wg.Wait()
	return results
}

// ClearCache drops every cached entry.
func (r *Resolver) ClearCache() {
	r.mu.Lock()
	r.cache = make(map[string]cacheEntry)
	r.mu.Unlock()
	r.logger.Info("Geolocation cache cleared")
}

// Stats returns the current cache size and keys.
func (r *Resolver) Stats() CacheStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := CacheStats{Size: len(r.cache), Keys: make([]string, 0, len(r.cache))}
	for ip := range r.cache {
		stats.Keys = append(stats.Keys, ip)
	}
	return stats
}

func (r *Resolver) cached(ip string) (*Info, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.cache[ip]
	if !ok {
		return nil, false
	}
	if time.Since(entry.cachedAt) >= r.cfg.CacheTTL {
		delete(r.cache, ip)
		return nil, false
	}
	return entry.info, true
}

// fetch performs the HTTP call with retries. Transport errors and 5xx
// responses are retried with linear backoff; anything else is final.
func (r *Resolver) fetch(ctx context.Context, ip string) (*Info, error) {
	url := fmt.Sprintf("%s/json/%s?fields=%s", r.cfg.BaseURL, ip, queryFields)

	var lastErr error
	for attempt := 0; attempt <= r.cfg.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.cfg.RetryDelay * time.Duration(attempt)):
			}
		}

		info, retryable, err := r.doRequest(ctx, url)
		if err == nil {
			return info, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		r.logger.Debug("Retrying geolocation lookup",
			zap.String("ip", ip), zap.Int("attempt", attempt+1), zap.Error(err))
	}
	return nil, lastErr
}

func (r *Resolver) doRequest(ctx context.Context, url string) (info *Info, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to build geolocation request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		io.Copy(io.Discard, resp.Body)
		return nil, true, fmt.Errorf("geolocation provider returned status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, false, fmt.Errorf("geolocation provider returned status %d", resp.StatusCode)
	}

	var parsed Info
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, false, fmt.Errorf("failed to decode geolocation response: %w", err)
	}
	return &parsed, false, nil
}
