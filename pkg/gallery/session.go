package gallery

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/matzehuels/metgallery/pkg/integrations/met"
)

// DefaultPageSize is the number of IDs loaded per page.
const DefaultPageSize = 12

var (
	// ErrEmptyQuery is returned for a blank search.
	ErrEmptyQuery = errors.New("empty search query")

	// ErrBusy is returned when a load is requested while another one on the
	// same session is still running. The request is dropped, not queued.
	ErrBusy = errors.New("a load is already in progress")

	// ErrNoMorePages is returned by LoadMore once every ID has been loaded.
	ErrNoMorePages = errors.New("no more results")
)

// Page is one slice of a result list, hydrated with records.
type Page struct {
	Title    string        // what the list shows, e.g. the query
	Index    int           // 0-based page number
	Artworks []*met.Object // records with an image, in list order
	Total    int           // IDs in the whole list
	HasMore  bool          // another LoadMore would return artworks
}

// NoResults reports that the list behind the page is empty.
func (p *Page) NoResults() bool { return p.Total == 0 }

// Session holds the browsing state of one user: the current result list and
// how far it has been paged. Methods may be called from several goroutines;
// only one load runs at a time and concurrent loads fail with [ErrBusy].
type Session struct {
	coll     *Collection
	resolver *Resolver
	pageSize int

	token chan struct{}

	mu    sync.Mutex
	title string
	ids   []int
	next  int
}

// NewSession creates a session. A pageSize of 0 uses [DefaultPageSize].
func NewSession(coll *Collection, resolver *Resolver, pageSize int) *Session {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	s := &Session{
		coll:     coll,
		resolver: resolver,
		pageSize: pageSize,
		token:    make(chan struct{}, 1),
	}
	s.token <- struct{}{}
	return s
}

func (s *Session) acquire() bool {
	select {
	case <-s.token:
		return true
	default:
		return false
	}
}

func (s *Session) release() { s.token <- struct{}{} }

// Search replaces the current list with the hits for query and loads the
// first page. A query with no hits returns a page whose NoResults is true.
func (s *Session) Search(ctx context.Context, query string) (*Page, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if !s.acquire() {
		return nil, ErrBusy
	}
	defer s.release()

	s.reset(query, s.coll.Search(ctx, query))
	return s.loadPage(ctx)
}

// ShowArtist resolves name and, when any artwork matches, replaces the
// current list with the matches and loads the first page. When nothing
// matches the current list is left untouched and the page is nil.
func (s *Session) ShowArtist(ctx context.Context, name string) (*Page, *Resolution, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, ErrEmptyQuery
	}
	if !s.acquire() {
		return nil, nil, ErrBusy
	}
	defer s.release()

	res, err := s.resolver.ResolveArtist(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	if res.Empty() {
		return nil, res, nil
	}

	s.reset(name, res.ObjectIDs)
	page, err := s.loadPage(ctx)
	return page, res, err
}

// LoadMore loads the next page of the current list.
func (s *Session) LoadMore(ctx context.Context) (*Page, error) {
	if !s.acquire() {
		return nil, ErrBusy
	}
	defer s.release()

	s.mu.Lock()
	done := s.next*s.pageSize >= len(s.ids)
	s.mu.Unlock()
	if done {
		return nil, ErrNoMorePages
	}
	return s.loadPage(ctx)
}

// Title returns the title of the current list.
func (s *Session) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

func (s *Session) reset(title string, ids []int) {
	s.mu.Lock()
	s.title = title
	s.ids = ids
	s.next = 0
	s.mu.Unlock()
}

// loadPage must be called with the token held.
func (s *Session) loadPage(ctx context.Context) (*Page, error) {
	s.mu.Lock()
	index := s.next
	start := min(index*s.pageSize, len(s.ids))
	end := min(start+s.pageSize, len(s.ids))
	ids := s.ids[start:end]
	page := &Page{Title: s.title, Index: index, Total: len(s.ids), HasMore: end < len(s.ids)}
	s.mu.Unlock()

	objs := s.coll.Objects(ctx, ids)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page.Artworks = make([]*met.Object, 0, len(objs))
	for _, obj := range objs {
		if obj.HasImage() {
			page.Artworks = append(page.Artworks, obj)
		}
	}

	s.mu.Lock()
	s.next = index + 1
	s.mu.Unlock()
	return page, nil
}
