package gallery

import (
	"context"
	"fmt"
	"sync"

	"github.com/matzehuels/metgallery/pkg/integrations"
	"github.com/matzehuels/metgallery/pkg/integrations/met"
)

var errUnavailable = fmt.Errorf("%w: status 503", integrations.ErrNetwork)

// fakeSource is an in-memory Source. Unknown searches return no hits,
// unknown objects return ErrNotFound.
type fakeSource struct {
	mu       sync.Mutex
	searches map[string][]int
	depts    map[int][]int
	objects  map[int]*met.Object
	down     bool

	searchCalls []string
	deptCalls   []int
	objectCalls map[int]int

	// When gate is set, Object signals entered and blocks until gate closes.
	gate    chan struct{}
	entered chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		searches:    make(map[string][]int),
		depts:       make(map[int][]int),
		objects:     make(map[int]*met.Object),
		objectCalls: make(map[int]int),
	}
}

func (f *fakeSource) addObject(id int, artist string, withImage bool) {
	obj := &met.Object{ObjectID: id, Title: fmt.Sprintf("Work %d", id), ArtistDisplayName: artist}
	if withImage {
		obj.PrimaryImage = fmt.Sprintf("https://images.example/%d.jpg", id)
	}
	f.objects[id] = obj
}

func (f *fakeSource) setDown(down bool) {
	f.mu.Lock()
	f.down = down
	f.mu.Unlock()
}

func (f *fakeSource) Search(ctx context.Context, query string, refresh bool) (*met.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls = append(f.searchCalls, query)
	if f.down {
		return nil, errUnavailable
	}
	ids := f.searches[query]
	return &met.SearchResult{Total: len(ids), ObjectIDs: ids}, nil
}

func (f *fakeSource) SearchDepartment(ctx context.Context, id int, refresh bool) (*met.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deptCalls = append(f.deptCalls, id)
	if f.down {
		return nil, errUnavailable
	}
	ids := f.depts[id]
	return &met.SearchResult{Total: len(ids), ObjectIDs: ids}, nil
}

func (f *fakeSource) Object(ctx context.Context, id int, refresh bool) (*met.Object, error) {
	f.mu.Lock()
	gate, entered := f.gate, f.entered
	f.mu.Unlock()
	if gate != nil {
		select {
		case entered <- struct{}{}:
		default:
		}
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objectCalls[id]++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.down {
		return nil, errUnavailable
	}
	obj, ok := f.objects[id]
	if !ok {
		return nil, fmt.Errorf("%w: object %d", integrations.ErrNotFound, id)
	}
	cp := *obj
	return &cp, nil
}

func (f *fakeSource) totalObjectCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.objectCalls {
		n += c
	}
	return n
}

func (f *fakeSource) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searchCalls)
}

func (f *fakeSource) deptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deptCalls)
}

func idRange(from, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = from + i
	}
	return ids
}

