package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"space/explorer/internal/config"
	"space/explorer/internal/domain"
	"space/explorer/internal/proxy"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

type NASAClient interface {
	Request(ctx context.Context, endpoint string, params domain.Params) (*Envelope, error)

	GetAPOD(ctx context.Context) (*domain.APOD, error)
	GetAPODBatch(ctx context.Context, count int) ([]domain.APOD, error)
	GetAsteroids(ctx context.Context, start, end time.Time) (*domain.AsteroidFeed, error)
	GetMarsWeather(ctx context.Context) (*domain.MarsWeather, error)
	GetEPIC(ctx context.Context) ([]domain.EPICImage, error)
	GetRoverPhotos(ctx context.Context, rover string, sol int) (*domain.RoverPhotos, error)
	SearchImages(ctx context.Context, query string, limit int) (*domain.ImageCollection, error)
	GetAssetDetails(ctx context.Context, nasaID string) (*domain.ImageCollection, error)
	GetCacheStats(ctx context.Context) (*domain.CacheStats, error)

	Close() error
}

// Envelope is the outer JSON structure every endpoint answers with.
type Envelope struct {
	Success *bool           `json:"success,omitempty"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorMessage extracts a human-readable message from the error field, which
// is usually a string but sometimes an object.
func (e *Envelope) ErrorMessage() string {
	raw := bytes.TrimSpace(e.Error)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return e.Message
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}
	return string(raw)
}

type nasaClient struct {
	rl         ratelimit.Limiter
	baseURL    string
	httpClient *resty.Client

	proxies      proxy.Supplier
	proxyMu      sync.Mutex
	currentProxy string
}

func NewNASAClient(cfg config.NASAConfig, proxySupplier proxy.Supplier) NASAClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")

	if cfg.Timeout > 0 {
		client.SetTimeout(time.Duration(cfg.Timeout) * time.Second)
	}

	currentProxy := ""
	if proxySupplier != nil {
		if proxyURL := proxySupplier.Get(); proxyURL != "" {
			client.SetProxy(proxyURL)
			currentProxy = proxyURL
			log.Infof("🔗 Using proxy: %s", proxyURL)
		}
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &nasaClient{
		rl:           rl,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   client,
		proxies:      proxySupplier,
		currentProxy: currentProxy,
	}
}

// Request performs a single GET against the base URL. Parameters with nil or
// empty values are not sent. There are no retries.
func (c *nasaClient) Request(ctx context.Context, endpoint string, params domain.Params) (*Envelope, error) {
	fullURL, err := BuildURL(c.baseURL, endpoint, params)
	if err != nil {
		return nil, transportError(endpoint, err)
	}

	c.rl.Take()

	started := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(fullURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, transportError(endpoint, fmt.Errorf("request cancelled: %w", ctx.Err()))
		}
		c.rotateProxy()
		return nil, transportError(endpoint, err)
	}

	log.WithFields(log.Fields{
		"endpoint": endpoint,
		"status":   resp.StatusCode(),
		"took":     time.Since(started).Round(time.Millisecond),
	}).Debug("API request finished")

	var env Envelope
	parseErr := json.Unmarshal([]byte(resp.String()), &env)

	if status := resp.StatusCode(); status < 200 || status > 299 {
		message := ""
		if parseErr == nil {
			message = env.ErrorMessage()
		}
		return nil, apiError(endpoint, status, message)
	}

	if parseErr != nil {
		return nil, transportError(endpoint, fmt.Errorf("invalid JSON response: %w", parseErr))
	}

	if env.Success != nil && !*env.Success {
		return nil, apiError(endpoint, resp.StatusCode(), env.ErrorMessage())
	}

	return &env, nil
}

// rotateProxy switches later requests to the next proxy after a transport
// failure. The failed request itself is not repeated.
func (c *nasaClient) rotateProxy() {
	if c.proxies == nil {
		return
	}

	c.proxyMu.Lock()
	defer c.proxyMu.Unlock()

	next := c.proxies.Get()
	if next == "" || next == c.currentProxy {
		return
	}
	c.httpClient.SetProxy(next)
	log.Warnf("🔄 Switching proxy %s -> %s", c.currentProxy, next)
	c.currentProxy = next
}

// BuildURL joins base and endpoint and appends the non-empty params.
func BuildURL(baseURL, endpoint string, params domain.Params) (string, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base URL %q is not absolute", baseURL)
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

func getData[T any](ctx context.Context, c NASAClient, endpoint string, params domain.Params) (*T, error) {
	env, err := c.Request(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var out T
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return &out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, transportError(endpoint, fmt.Errorf("failed to decode payload: %w", err))
	}
	return &out, nil
}

func (c *nasaClient) GetAPOD(ctx context.Context) (*domain.APOD, error) {
	return getData[domain.APOD](ctx, c, "/apod", nil)
}

func (c *nasaClient) GetAPODBatch(ctx context.Context, count int) ([]domain.APOD, error) {
	list, err := getData[[]domain.APOD](ctx, c, "/apod/multiple", domain.Params{"count": count})
	if err != nil {
		return nil, err
	}
	return *list, nil
}

func (c *nasaClient) GetAsteroids(ctx context.Context, start, end time.Time) (*domain.AsteroidFeed, error) {
	return getData[domain.AsteroidFeed](ctx, c, "/asteroids", domain.Params{
		"start_date": start.UTC().Format(time.DateOnly),
		"end_date":   end.UTC().Format(time.DateOnly),
	})
}

func (c *nasaClient) GetMarsWeather(ctx context.Context) (*domain.MarsWeather, error) {
	const endpoint = "/mars"

	weather, err := getData[domain.MarsWeather](ctx, c, endpoint, nil)
	if err != nil {
		return nil, err
	}

	if weather.Error != "" {
		message := weather.Error
		if weather.Message != "" {
			message = fmt.Sprintf("%s: %s", weather.Error, weather.Message)
		}
		return nil, apiError(endpoint, 200, message)
	}
	return weather, nil
}

func (c *nasaClient) GetEPIC(ctx context.Context) ([]domain.EPICImage, error) {
	list, err := getData[[]domain.EPICImage](ctx, c, "/epic", nil)
	if err != nil {
		return nil, err
	}
	return *list, nil
}

func (c *nasaClient) GetRoverPhotos(ctx context.Context, rover string, sol int) (*domain.RoverPhotos, error) {
	return getData[domain.RoverPhotos](ctx, c, "/rover", domain.Params{
		"rover": rover,
		"sol":   sol,
	})
}

func (c *nasaClient) SearchImages(ctx context.Context, query string, limit int) (*domain.ImageCollection, error) {
	return getData[domain.ImageCollection](ctx, c, "/images", domain.Params{
		"q":     query,
		"limit": limit,
	})
}

func (c *nasaClient) GetAssetDetails(ctx context.Context, nasaID string) (*domain.ImageCollection, error) {
	return getData[domain.ImageCollection](ctx, c, "/images/captions/"+url.PathEscape(nasaID), nil)
}

func (c *nasaClient) GetCacheStats(ctx context.Context) (*domain.CacheStats, error) {
	return getData[domain.CacheStats](ctx, c, "/cache/stats", nil)
}

func (c *nasaClient) Close() error {
	return c.httpClient.Close()
}
