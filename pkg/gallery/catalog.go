package gallery

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/metgallery/pkg/observability"
)

// ErrCatalogUnavailable is returned by [CatalogBuilder.Load] when sampling
// left the catalog empty, which in practice means the API is unreachable or
// refusing object lookups.
var ErrCatalogUnavailable = errors.New("artist catalog unavailable")

// Department is a museum department sampled for artist names.
type Department struct {
	ID   int
	Name string
}

var (
	// CatalogDepartments are sampled in this order.
	CatalogDepartments = []Department{
		{ID: 11, Name: "European Paintings"},
		{ID: 1, Name: "American Wing"},
		{ID: 6, Name: "Asian Art"},
		{ID: 10, Name: "Egyptian Art"},
		{ID: 14, Name: "Arms and Armor"},
		{ID: 21, Name: "Modern Art"},
	}

	// CatalogSeedTerms are searched after the departments so that well-known
	// artists appear even when the department samples miss them.
	CatalogSeedTerms = []string{"Monet", "Van Gogh", "Picasso", "Rembrandt", "Degas", "Renoir", "Cézanne", "Rodin"}
)

const (
	DefaultDepartmentSample = 100                    // IDs sampled per department
	DefaultDepartmentBatch  = 10                     // records fetched concurrently
	DefaultDepartmentPause  = 100 * time.Millisecond // pause after each department batch
	DefaultSeedTermSample   = 20                     // IDs sampled per seed term
	DefaultBuildTimeout     = 2 * time.Minute        // upper bound on one shared build
)

// Catalog is the set of distinct artist display names seen so far.
// It only grows. Safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	names  map[string]struct{}
	loaded bool
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{names: make(map[string]struct{})}
}

// Add inserts non-empty names and returns how many were new.
func (c *Catalog) Add(names ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	added := 0
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := c.names[n]; !ok {
			c.names[n] = struct{}{}
			added++
		}
	}
	return added
}

// Len returns the number of distinct names.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}

// Loaded reports whether a build has completed.
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *Catalog) markLoaded() {
	c.mu.Lock()
	c.loaded = true
	c.mu.Unlock()
}

// Names returns every name, sorted.
func (c *Catalog) Names() []string {
	return c.Filter("")
}

// Filter returns the sorted names containing query, ignoring case.
// An empty query returns every name.
func (c *Catalog) Filter(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))

	c.mu.RLock()
	out := make([]string, 0, len(c.names))
	for n := range c.names {
		if query == "" || strings.Contains(strings.ToLower(n), query) {
			out = append(out, n)
		}
	}
	c.mu.RUnlock()

	slices.Sort(out)
	return out
}

// CatalogOptions configures how the catalog is sampled.
type CatalogOptions struct {
	Departments      []Department  // default: CatalogDepartments
	SeedTerms        []string      // default: CatalogSeedTerms
	DepartmentSample int           // default: 100
	DepartmentBatch  int           // default: 10
	DepartmentPause  time.Duration // default: 100ms, negative: none
	SeedTermSample   int           // default: 20
	BuildTimeout     time.Duration // default: 2m
}

// WithDefaults returns a copy of CatalogOptions with zero values replaced by defaults.
func (o CatalogOptions) WithDefaults() CatalogOptions {
	opts := o
	if opts.Departments == nil {
		opts.Departments = CatalogDepartments
	}
	if opts.SeedTerms == nil {
		opts.SeedTerms = CatalogSeedTerms
	}
	if opts.DepartmentSample <= 0 {
		opts.DepartmentSample = DefaultDepartmentSample
	}
	if opts.DepartmentBatch <= 0 {
		opts.DepartmentBatch = DefaultDepartmentBatch
	}
	if opts.DepartmentPause < 0 {
		opts.DepartmentPause = 0
	} else if opts.DepartmentPause == 0 {
		opts.DepartmentPause = DefaultDepartmentPause
	}
	if opts.SeedTermSample <= 0 {
		opts.SeedTermSample = DefaultSeedTermSample
	}
	if opts.BuildTimeout <= 0 {
		opts.BuildTimeout = DefaultBuildTimeout
	}
	return opts
}

// CatalogBuilder fills a [Catalog] by sampling the collection. The result is
// necessarily incomplete and biased toward the sampled departments and seed
// terms; the museum holds far more artists than a sample reaches.
type CatalogBuilder struct {
	coll    *Collection
	catalog *Catalog
	opts    CatalogOptions
	group   singleflight.Group
}

// NewCatalogBuilder creates a builder that fills catalog from coll.
func NewCatalogBuilder(coll *Collection, catalog *Catalog, opts CatalogOptions) *CatalogBuilder {
	return &CatalogBuilder{coll: coll, catalog: catalog, opts: opts.WithDefaults()}
}

// Catalog returns the catalog being filled.
func (b *CatalogBuilder) Catalog() *Catalog { return b.catalog }

// Load builds the catalog on first use and returns it. Concurrent callers
// share one build; later calls return immediately. When the build fails with
// [ErrCatalogUnavailable] the catalog stays unloaded and the next call
// tries again.
//
// The shared build is detached from any single caller: cancelling ctx makes
// this call return ctx.Err() while the build continues for the others,
// bounded by BuildTimeout.
func (b *CatalogBuilder) Load(ctx context.Context) (*Catalog, error) {
	if b.catalog.Loaded() {
		return b.catalog, nil
	}
	return b.build(ctx, false)
}

// Reload samples the collection again, adding any new names. It never joins
// an in-flight Load; concurrent Reload calls share one rebuild.
func (b *CatalogBuilder) Reload(ctx context.Context) (*Catalog, error) {
	return b.build(ctx, true)
}

func (b *CatalogBuilder) build(ctx context.Context, force bool) (*Catalog, error) {
	key := "load"
	if force {
		key = "reload"
	}
	ch := b.group.DoChan(key, func() (any, error) {
		// A build may have finished between the Loaded check and DoChan.
		if !force && b.catalog.Loaded() {
			return nil, nil
		}
		bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.opts.BuildTimeout)
		defer cancel()

		start := time.Now()
		hooks := observability.Gallery()
		hooks.OnCatalogLoadStart(bctx)

		err := b.sample(bctx)
		if err == nil {
			b.catalog.markLoaded()
		}
		hooks.OnCatalogLoadComplete(bctx, b.catalog.Len(), time.Since(start), err)
		return nil, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return b.catalog, nil
	}
}

func (b *CatalogBuilder) sample(ctx context.Context) error {
	logger := b.coll.Logger()
	pause := Throttle(b.opts.DepartmentPause)

	for _, dept := range b.opts.Departments {
		ids := b.coll.Department(ctx, dept.ID)
		if len(ids) == 0 {
			logger.Warn("department sample empty", "department", dept.Name)
			continue
		}
		for _, batch := range batches(ids[:min(len(ids), b.opts.DepartmentSample)], b.opts.DepartmentBatch) {
			b.addArtists(ctx, batch)
			if err := pause.Wait(ctx); err != nil {
				return err
			}
		}
	}

	for _, term := range b.opts.SeedTerms {
		if err := ctx.Err(); err != nil {
			return err
		}
		ids := b.coll.Search(ctx, term)
		if len(ids) == 0 {
			logger.Warn("seed term returned nothing", "term", term)
			continue
		}
		b.addArtists(ctx, ids[:min(len(ids), b.opts.SeedTermSample)])
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if b.catalog.Len() == 0 {
		logger.Warn("catalog empty after sampling")
		return ErrCatalogUnavailable
	}
	return nil
}

func (b *CatalogBuilder) addArtists(ctx context.Context, ids []int) {
	for _, obj := range b.coll.Objects(ctx, ids) {
		if obj.HasArtist() {
			b.catalog.Add(obj.ArtistDisplayName)
		}
	}
}
