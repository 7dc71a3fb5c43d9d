package met

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/metgallery/pkg/cache"
	"github.com/matzehuels/metgallery/pkg/integrations"
)

// DefaultBaseURL is the public Collection API root.
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// Options configures a [Client]. The zero value talks to [DefaultBaseURL]
// without caching expiry, retries or rate limiting.
type Options struct {
	BaseURL   string        // API root (default DefaultBaseURL)
	CacheTTL  time.Duration // how long responses are cached (0 = no expiry)
	Timeout   time.Duration // per-request timeout
	Retries   int           // extra attempts for transient failures
	RateLimit float64       // requests per second, 0 = unlimited
	UserAgent string
}

// Client provides access to the Collection API.
//
// All methods are safe for concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Collection API client caching into backend.
func NewClient(backend cache.Cache, opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	var headers map[string]string
	if opts.UserAgent != "" {
		headers = map[string]string{"User-Agent": opts.UserAgent}
	}
	return &Client{
		Client: integrations.NewClient(backend, "met:", opts.CacheTTL, integrations.Options{
			Timeout:   opts.Timeout,
			Retries:   opts.Retries,
			RateLimit: opts.RateLimit,
			Headers:   headers,
		}),
		baseURL: base,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Search returns the IDs of objects with images matching query.
func (c *Client) Search(ctx context.Context, query string, refresh bool) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	u := c.baseURL + "/search?q=" + integrations.URLEncode(query) + "&hasImages=true"
	return c.search(ctx, "search:q:"+strings.ToLower(query), u, refresh)
}

// SearchDepartment returns the IDs of objects with images in a department.
func (c *Client) SearchDepartment(ctx context.Context, departmentID int, refresh bool) (*SearchResult, error) {
	id := strconv.Itoa(departmentID)
	u := c.baseURL + "/search?departmentId=" + id + "&hasImages=true"
	return c.search(ctx, "search:dept:"+id, u, refresh)
}

func (c *Client) search(ctx context.Context, key, u string, refresh bool) (*SearchResult, error) {
	var res SearchResult
	err := c.Cached(ctx, "search", key, refresh, &res, func() error {
		res = SearchResult{}
		return c.Get(ctx, u, &res)
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Object fetches one artwork record.
// Returns an error wrapping [integrations.ErrNotFound] for unknown IDs.
func (c *Client) Object(ctx context.Context, id int, refresh bool) (*Object, error) {
	var obj Object
	err := c.Cached(ctx, "object", "object:"+strconv.Itoa(id), refresh, &obj, func() error {
		if err := c.Get(ctx, c.baseURL+"/objects/"+strconv.Itoa(id), &obj); err != nil {
			if errors.Is(err, integrations.ErrNotFound) {
				return fmt.Errorf("%w: object %d", err, id)
			}
			return err
		}
		if obj.ObjectID == 0 {
			return fmt.Errorf("%w: object %d has no objectID", integrations.ErrDecode, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &obj, nil
}

// Departments lists the museum's departments.
func (c *Client) Departments(ctx context.Context, refresh bool) ([]Department, error) {
	var resp departmentsResponse
	err := c.Cached(ctx, "departments", "departments", refresh, &resp, func() error {
		return c.Get(ctx, c.baseURL+"/departments", &resp)
	})
	if err != nil {
		return nil, err
	}
	return resp.Departments, nil
}
