// Package battlenet implements the catalog provider against the Battle.net
// game data API.
package battlenet

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/goblinomics/craftprofit/internal/apperror"
	"github.com/goblinomics/craftprofit/internal/httpclient"
	"github.com/goblinomics/craftprofit/internal/logger"
	"github.com/goblinomics/craftprofit/internal/ratelimit"
)

const (
	oauthTokenPath = "/token"

	// Namespace categories used by the game data API. Static data (items,
	// recipes) and dynamic data (realms, auctions) live in different
	// namespaces, both suffixed with the region.
	NamespaceStatic  = "static"
	NamespaceDynamic = "dynamic"

	defaultLocale = "en_US"

	// Token refresh happens this long before actual expiry.
	tokenExpirySlack = 5 * time.Minute
)

// ClientConfig holds configuration for the Battle.net client.
type ClientConfig struct {
	ClientID          string
	ClientSecret      string
	OAuthURL          string // e.g. https://oauth.battle.net
	APIHost           func(region string) string
	RequestsPerSecond float64
	Burst             int
	// RequestsPerHour is the API contract's hourly quota, enforced
	// alongside the per-second limit. Zero disables the hourly limiter.
	RequestsPerHour int
	Timeout         time.Duration
}

// Client is a rate-limited, circuit-broken Battle.net API client shared by
// the catalog and market adapters.
type Client struct {
	api           httpclient.Client
	cfg           ClientConfig
	limiter       *ratelimit.Limiter
	hourlyLimiter *ratelimit.Limiter // nil when no hourly quota is set
	breaker       *gobreaker.CircuitBreaker[*httpclient.Response]
	logger        logger.LoggerInterface

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a Battle.net API client.
func NewClient(cfg ClientConfig, log logger.LoggerInterface) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, apperror.New(apperror.CodeConfigurationError,
			apperror.WithContext("battlenet client credentials missing"))
	}

	api, err := httpclient.New(
		httpclient.WithProviderName("battlenet"),
		httpclient.WithRequestTimeout(cfg.Timeout),
		httpclient.WithHeaders(map[string]string{
			"Accept": "application/json",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	settings := gobreaker.Settings{
		Name: "battlenet",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn(context.Background(), "circuit breaker state change",
				"name", name, "from", from.String(), "to", to.String())
		},
	}

	c := &Client{
		api:     api,
		cfg:     cfg,
		limiter: ratelimit.New(cfg.RequestsPerSecond, cfg.Burst),
		breaker: gobreaker.NewCircuitBreaker[*httpclient.Response](settings),
		logger:  log,
	}
	if cfg.RequestsPerHour > 0 {
		c.hourlyLimiter = ratelimit.NewPerHour(cfg.RequestsPerHour)
	}
	return c, nil
}

// token returns a valid OAuth access token, refreshing it when close to
// expiry. Battle.net uses the client-credentials grant.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	var result tokenResponse
	resp, err := c.api.NewRequest().
		SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret).
		SetBody(url.Values{"grant_type": []string{"client_credentials"}}).
		SetResult(&result).
		Post(ctx, c.cfg.OAuthURL+oauthTokenPath)
	if err != nil {
		return "", apperror.External(apperror.CodeAPIAuthFailed, "token request", err)
	}
	if resp.IsError() || result.AccessToken == "" {
		return "", apperror.New(apperror.CodeAPIAuthFailed,
			apperror.WithContext(fmt.Sprintf("token endpoint returned %d", resp.StatusCode)))
	}

	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenExpirySlack)
	return c.accessToken, nil
}

// Get performs an authenticated, namespaced game data request and decodes
// the JSON response into result.
func (c *Client) Get(ctx context.Context, region, path, namespace string, query map[string]string, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	if c.hourlyLimiter != nil {
		if err := c.hourlyLimiter.Wait(ctx); err != nil {
			return err
		}
	}

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	resp, err := c.breaker.Execute(func() (*httpclient.Response, error) {
		req := c.api.NewRequest().
			SetHeader("Authorization", "Bearer "+token).
			SetQueryParam("namespace", namespace+"-"+region).
			SetQueryParam("locale", defaultLocale).
			SetResult(result)
		for k, v := range query {
			req.SetQueryParam(k, v)
		}
		return req.Get(ctx, c.cfg.APIHost(region)+path)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return apperror.New(apperror.CodeCircuitOpen, apperror.WithContext(path))
		}
		return apperror.External(apperror.CodeAPIRequestFailed, path, err)
	}

	switch {
	case resp.StatusCode == 404:
		return apperror.NotFound(apperror.CodeNotFound, path)
	case resp.StatusCode == 429:
		return apperror.New(apperror.CodeAPIRateLimited, apperror.WithContext(path))
	case resp.IsError():
		return apperror.New(apperror.CodeAPIRequestFailed,
			apperror.WithContext(fmt.Sprintf("%s returned %d", path, resp.StatusCode)))
	}

	return nil
}
