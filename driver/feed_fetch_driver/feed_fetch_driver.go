// Package feed_fetch_driver performs the actual HTTP retrieval of feed
// documents: relay proxy first when one is configured, direct GET as
// the fallback, with per-host rate limiting and robots.txt politeness.
package feed_fetch_driver

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"intmon/config"
	"intmon/domain"
	"intmon/utils/logger"
	"intmon/utils/proxy"
	"intmon/utils/rate_limiter"

	"github.com/temoto/robotstxt"
)

const defaultUserAgent = "IntegrationMonitor/1.0 (+https://intmon.example.com/bot)"

type FeedFetchDriver struct {
	httpClient   *http.Client
	proxyConfig  *proxy.Strategy
	rateLimiter  *rate_limiter.HostRateLimiter
	maxBodyBytes int64
	userAgent    string

	robotsMutex sync.RWMutex
	robotsCache map[string]*robotstxt.RobotsData
}

func NewFeedFetchDriver(cfg *config.Config, rateLimiter *rate_limiter.HostRateLimiter) *FeedFetchDriver {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: cfg.HTTP.DialTimeout,
		}).DialContext,
		TLSHandshakeTimeout: cfg.HTTP.TLSHandshakeTimeout,
		IdleConnTimeout:     cfg.HTTP.IdleConnTimeout,
	}

	return &FeedFetchDriver{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.ClientTimeout,
			Transport: transport,
		},
		proxyConfig:  proxy.GetStrategy(),
		rateLimiter:  rateLimiter,
		maxBodyBytes: cfg.HTTP.MaxResponseBytes,
		userAgent:    defaultUserAgent,
		robotsCache:  make(map[string]*robotstxt.RobotsData),
	}
}

// NewFeedFetchDriverWithDeps creates a driver with explicit dependencies (for testing).
func NewFeedFetchDriverWithDeps(httpClient *http.Client, proxyConfig *proxy.Strategy, rateLimiter *rate_limiter.HostRateLimiter, maxBodyBytes int64) *FeedFetchDriver {
	return &FeedFetchDriver{
		httpClient:   httpClient,
		proxyConfig:  proxyConfig,
		rateLimiter:  rateLimiter,
		maxBodyBytes: maxBodyBytes,
		userAgent:    defaultUserAgent,
		robotsCache:  make(map[string]*robotstxt.RobotsData),
	}
}

// FetchFeedBody retrieves the raw feed document. The relay proxy is
// tried first when enabled; any relay failure falls back to a direct
// GET. Only when both attempts fail does the caller see an error, a
// NetworkError wrapping the last cause.
func (d *FeedFetchDriver) FetchFeedBody(ctx context.Context, feedURL string) ([]byte, error) {
	parsedURL, err := url.Parse(feedURL)
	if err != nil {
		return nil, &domain.NetworkError{URL: feedURL, Cause: err}
	}

	if d.rateLimiter != nil {
		if err := d.rateLimiter.WaitForHost(ctx, feedURL); err != nil {
			return nil, &domain.NetworkError{URL: feedURL, Cause: fmt.Errorf("%w: %v", domain.ErrRateLimited, err)}
		}
	}

	if !d.allowedByRobots(ctx, parsedURL) {
		return nil, &domain.NetworkError{URL: feedURL, Cause: fmt.Errorf("disallowed by robots.txt")}
	}

	var lastErr error

	if d.proxyConfig.IsEnabled() {
		body, err := d.doGet(ctx, d.proxyConfig.BuildURL(feedURL))
		if err == nil {
			return body, nil
		}
		logger.SafeWarn("Proxy fetch failed, falling back to direct", "url", feedURL, "error", err)
		lastErr = err
	}

	body, err := d.doGet(ctx, feedURL)
	if err == nil {
		return body, nil
	}
	lastErr = err

	return nil, &domain.NetworkError{URL: feedURL, Cause: lastErr}
}

func (d *FeedFetchDriver) doGet(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", d.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, d.maxBodyBytes))
	if err != nil {
		return nil, err
	}

	return body, nil
}

// allowedByRobots consults the host's robots.txt, cached per host.
// Unreachable or malformed robots.txt counts as allowed.
func (d *FeedFetchDriver) allowedByRobots(ctx context.Context, parsedURL *url.URL) bool {
	host := parsedURL.Host
	if host == "" {
		return true
	}

	d.robotsMutex.RLock()
	robots, ok := d.robotsCache[host]
	d.robotsMutex.RUnlock()

	if !ok {
		robots = d.fetchRobots(ctx, parsedURL)
		d.robotsMutex.Lock()
		d.robotsCache[host] = robots
		d.robotsMutex.Unlock()
	}

	if robots == nil {
		return true
	}

	return robots.TestAgent(parsedURL.Path, d.userAgent)
}

func (d *FeedFetchDriver) fetchRobots(ctx context.Context, parsedURL *url.URL) *robotstxt.RobotsData {
	robotsURL := parsedURL.Scheme + "://" + parsedURL.Host + "/robots.txt"

	fetchCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		logger.SafeWarn("Failed to fetch robots.txt", "url", robotsURL, "error", err)
		return nil
	}
	defer resp.Body.Close()

	robots, err := robotstxt.FromResponse(resp)
	if err != nil {
		logger.SafeWarn("Failed to parse robots.txt", "url", robotsURL, "error", err)
		return nil
	}

	return robots
}
