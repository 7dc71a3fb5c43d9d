package gallery

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/metgallery/pkg/integrations/met"
)

// Source is the remote catalog the gallery reads from.
// [met.Client] implements it.
type Source interface {
	Search(ctx context.Context, query string, refresh bool) (*met.SearchResult, error)
	SearchDepartment(ctx context.Context, departmentID int, refresh bool) (*met.SearchResult, error)
	Object(ctx context.Context, id int, refresh bool) (*met.Object, error)
}

var _ Source = (*met.Client)(nil)

// Collection wraps a [Source] so that no remote failure reaches gallery
// code: failed searches yield nil IDs and failed lookups yield nil objects.
// Every failure is logged at debug level.
type Collection struct {
	src     Source
	logger  *log.Logger
	refresh bool
}

// NewCollection wraps src. A nil logger discards output.
func NewCollection(src Source, logger *log.Logger) *Collection {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Collection{src: src, logger: logger}
}

// WithRefresh returns a copy of c that bypasses response caches.
func (c *Collection) WithRefresh(refresh bool) *Collection {
	cp := *c
	cp.refresh = refresh
	return &cp
}

// Logger returns the logger failures are reported to.
func (c *Collection) Logger() *log.Logger { return c.logger }

// Search returns the IDs matching query, or nil on any failure.
func (c *Collection) Search(ctx context.Context, query string) []int {
	res, err := c.src.Search(ctx, query, c.refresh)
	if err != nil {
		c.logger.Debug("search failed", "query", query, "err", err)
		return nil
	}
	return res.ObjectIDs
}

// Department returns the IDs in a department, or nil on any failure.
func (c *Collection) Department(ctx context.Context, departmentID int) []int {
	res, err := c.src.SearchDepartment(ctx, departmentID, c.refresh)
	if err != nil {
		c.logger.Debug("department search failed", "department", departmentID, "err", err)
		return nil
	}
	return res.ObjectIDs
}

// Object returns one record, or nil on any failure.
func (c *Collection) Object(ctx context.Context, id int) *met.Object {
	obj, err := c.src.Object(ctx, id, c.refresh)
	if err != nil {
		c.logger.Debug("object fetch failed", "id", id, "err", err)
		return nil
	}
	return obj
}

// MaxConcurrentFetches caps the record lookups [Collection.Objects] keeps in
// flight at once.
const MaxConcurrentFetches = 20

// Objects fetches ids concurrently, at most [MaxConcurrentFetches] at a time.
// The result has one entry per input ID in input order; entries are nil where
// the fetch failed.
func (c *Collection) Objects(ctx context.Context, ids []int) []*met.Object {
	out := make([]*met.Object, len(ids))
	var g errgroup.Group
	g.SetLimit(MaxConcurrentFetches)
	for i, id := range ids {
		g.Go(func() error {
			out[i] = c.Object(ctx, id)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
