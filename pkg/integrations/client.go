package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/matzehuels/metgallery/pkg/cache"
	"github.com/matzehuels/metgallery/pkg/observability"
)

// Options tunes the transport behavior of a [Client].
//
// The zero value is valid: default timeout, a single attempt per request and
// no client-side rate limit.
type Options struct {
	Timeout   time.Duration     // per-request timeout (0 = DefaultTimeout)
	Retries   int               // extra attempts for transient failures (0 = none)
	RateLimit float64           // max requests per second (0 = unlimited)
	Headers   map[string]string // sent with every request
}

// Client provides shared HTTP functionality for remote API clients.
// It handles response caching, optional retries, request rate limiting and
// common request headers.
//
// All methods are safe for concurrent use.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	prefix  string
	ttl     time.Duration
	retries int
	limiter *rate.Limiter
	headers map[string]string
}

// NewClient creates a Client that caches decoded responses in backend under
// keys starting with prefix, each kept for ttl.
// Pass [cache.NewNullCache] to disable caching.
func NewClient(backend cache.Cache, prefix string, ttl time.Duration, opts Options) *Client {
	if backend == nil {
		backend = cache.NewNullCache()
	}
	c := &Client{
		http:    NewHTTPClient(opts.Timeout),
		cache:   backend,
		prefix:  prefix,
		ttl:     ttl,
		retries: max(opts.Retries, 0),
		headers: opts.Headers,
	}
	if opts.RateLimit > 0 {
		burst := max(int(opts.RateLimit), 1)
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return c
}

// Cached retrieves a value from cache or executes fetch and caches the result.
// If refresh is true, the cache is read-bypassed but still written.
// The fetch function should populate v; on success, v is stored in the cache.
// keyType labels the entry kind for observability hooks (e.g. "object").
func (c *Client) Cached(ctx context.Context, keyType, key string, refresh bool, v any, fetch func() error) error {
	key = c.prefix + key
	hooks := observability.Cache()

	if !refresh {
		if data, ok, _ := c.cache.Get(ctx, key); ok {
			if json.Unmarshal(data, v) == nil {
				hooks.OnCacheHit(ctx, keyType)
				return nil
			}
		}
		hooks.OnCacheMiss(ctx, keyType)
	}

	if err := cache.Retry(ctx, c.retries+1, 500*time.Millisecond, fetch); err != nil {
		return err
	}

	if data, err := json.Marshal(v); err == nil {
		if c.cache.Set(ctx, key, data, c.ttl) == nil {
			hooks.OnCacheSet(ctx, keyType, len(data))
		}
	}
	return nil
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, rawURL string, v any) error {
	body, err := c.doRequest(ctx, rawURL)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	host, path := hostPath(rawURL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, http.MethodGet, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, cache.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	hooks.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests || code == http.StatusForbidden:
		return cache.Retryable(fmt.Errorf("%w: status %d", ErrRateLimited, code))
	case code >= 500:
		return cache.Retryable(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

func hostPath(rawURL string) (string, string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rawURL
	}
	return u.Host, u.Path
}
