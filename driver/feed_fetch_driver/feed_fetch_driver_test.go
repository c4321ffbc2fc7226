package feed_fetch_driver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"intmon/domain"
	"intmon/utils/logger"
	"intmon/utils/proxy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0"?><rss version="2.0"><channel><title>t</title></channel></rss>`

func newTestDriver(proxyConfig *proxy.Strategy) *FeedFetchDriver {
	logger.InitLogger()
	client := &http.Client{Timeout: 5 * time.Second}
	return NewFeedFetchDriverWithDeps(client, proxyConfig, nil, 1024*1024)
}

func TestFetchFeedBody_Direct(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, defaultUserAgent, r.Header.Get("User-Agent"))
		w.Write([]byte(sampleFeed))
	}))
	defer origin.Close()

	driver := newTestDriver(&proxy.Strategy{})

	body, err := driver.FetchFeedBody(context.Background(), origin.URL+"/feed.xml")
	require.NoError(t, err)
	assert.Equal(t, sampleFeed, string(body))
}

func TestFetchFeedBody_ProxyPreferred(t *testing.T) {
	var proxyHit bool
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxyHit = true
		assert.Equal(t, "/fetch", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("url"))
		w.Write([]byte(sampleFeed))
	}))
	defer relay.Close()

	driver := newTestDriver(&proxy.Strategy{BaseURL: relay.URL, Enabled: true})

	body, err := driver.FetchFeedBody(context.Background(), "http://feeds.invalid/feed.xml")
	require.NoError(t, err)
	assert.True(t, proxyHit)
	assert.Equal(t, sampleFeed, string(body))
}

func TestFetchFeedBody_ProxyFailureFallsBackToDirect(t *testing.T) {
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer relay.Close()

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(sampleFeed))
	}))
	defer origin.Close()

	driver := newTestDriver(&proxy.Strategy{BaseURL: relay.URL, Enabled: true})

	body, err := driver.FetchFeedBody(context.Background(), origin.URL+"/feed.xml")
	require.NoError(t, err)
	assert.Equal(t, sampleFeed, string(body))
}

func TestFetchFeedBody_BothAttemptsFail(t *testing.T) {
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer relay.Close()

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer origin.Close()

	driver := newTestDriver(&proxy.Strategy{BaseURL: relay.URL, Enabled: true})

	body, err := driver.FetchFeedBody(context.Background(), origin.URL+"/feed.xml")
	require.Error(t, err)
	assert.Nil(t, body)

	var netErr *domain.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestFetchFeedBody_RespectsRobotsDisallow(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		w.Write([]byte(sampleFeed))
	}))
	defer origin.Close()

	driver := newTestDriver(&proxy.Strategy{})

	_, err := driver.FetchFeedBody(context.Background(), origin.URL+"/private/feed.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "robots.txt")

	// allowed paths on the same host still fetch
	body, err := driver.FetchFeedBody(context.Background(), origin.URL+"/public/feed.xml")
	require.NoError(t, err)
	assert.Equal(t, sampleFeed, string(body))
}

func TestFetchFeedBody_BodySizeLimited(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(strings.Repeat("x", 4096)))
	}))
	defer origin.Close()

	logger.InitLogger()
	client := &http.Client{Timeout: 5 * time.Second}
	driver := NewFeedFetchDriverWithDeps(client, &proxy.Strategy{}, nil, 1024)

	body, err := driver.FetchFeedBody(context.Background(), origin.URL+"/feed.xml")
	require.NoError(t, err)
	assert.Len(t, body, 1024)
}
