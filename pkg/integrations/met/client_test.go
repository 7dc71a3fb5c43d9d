package met

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/metgallery/pkg/cache"
	"github.com/matzehuels/metgallery/pkg/integrations"
)

func TestClient_Search(t *testing.T) {
	var gotQuery, gotImages string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query().Get("q")
		gotImages = r.URL.Query().Get("hasImages")
		json.NewEncoder(w).Encode(SearchResult{Total: 3, ObjectIDs: []int{436532, 437853, 438817}})
	}))
	defer server.Close()

	c := testClient(server.URL)

	res, err := c.Search(context.Background(), "  Van Gogh ", false)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if gotQuery != "Van Gogh" {
		t.Errorf("q = %q, want %q", gotQuery, "Van Gogh")
	}
	if gotImages != "true" {
		t.Errorf("hasImages = %q, want true", gotImages)
	}
	if len(res.ObjectIDs) != 3 || res.ObjectIDs[0] != 436532 {
		t.Errorf("ObjectIDs = %v", res.ObjectIDs)
	}
}

func TestClient_SearchNoHits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":0,"objectIDs":null}`))
	}))
	defer server.Close()

	res, err := testClient(server.URL).Search(context.Background(), "zzzz", false)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !res.Empty() {
		t.Errorf("expected empty result, got %v", res.ObjectIDs)
	}
}

func TestClient_SearchDepartment(t *testing.T) {
	var gotDept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDept = r.URL.Query().Get("departmentId")
		json.NewEncoder(w).Encode(SearchResult{Total: 1, ObjectIDs: []int{10}})
	}))
	defer server.Close()

	res, err := testClient(server.URL).SearchDepartment(context.Background(), 11, false)
	if err != nil {
		t.Fatalf("SearchDepartment failed: %v", err)
	}
	if gotDept != "11" {
		t.Errorf("departmentId = %q, want 11", gotDept)
	}
	if len(res.ObjectIDs) != 1 {
		t.Errorf("ObjectIDs = %v", res.ObjectIDs)
	}
}

func TestClient_Object(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/objects/436532" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{
			"objectID": 436532,
			"title": "Self-Portrait with a Straw Hat",
			"primaryImage": "https://images.example/full.jpg",
			"primaryImageSmall": "https://images.example/small.jpg",
			"artistDisplayName": "Vincent van Gogh",
			"objectDate": "1887",
			"medium": "Oil on canvas",
			"department": "European Paintings",
			"objectWikidata_URL": "https://www.wikidata.org/wiki/Q1"
		}`))
	}))
	defer server.Close()

	obj, err := testClient(server.URL).Object(context.Background(), 436532, false)
	if err != nil {
		t.Fatalf("Object failed: %v", err)
	}
	if obj.ArtistDisplayName != "Vincent van Gogh" {
		t.Errorf("artist = %q", obj.ArtistDisplayName)
	}
	if !obj.HasImage() || !obj.HasArtist() {
		t.Error("expected image and artist")
	}
	if obj.Thumbnail() != "https://images.example/small.jpg" {
		t.Errorf("Thumbnail() = %q", obj.Thumbnail())
	}
	if obj.ObjectWikidataURL == "" {
		t.Error("expected wikidata URL to be decoded")
	}
}

func TestClient_ObjectNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"ObjectID not found"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Object(context.Background(), 1, false)
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_ObjectWithoutID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Object(context.Background(), 1, false)
	if !errors.Is(err, integrations.ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestClient_ObjectIsCached(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"objectID": 7, "title": "Cached"}`))
	}))
	defer server.Close()

	backend, _ := cache.NewFileCache(t.TempDir())
	c := NewClient(backend, Options{BaseURL: server.URL, CacheTTL: time.Hour})

	for range 3 {
		if _, err := c.Object(context.Background(), 7, false); err != nil {
			t.Fatalf("Object failed: %v", err)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("server hit %d times, want 1", hits.Load())
	}

	if _, err := c.Object(context.Background(), 7, true); err != nil {
		t.Fatalf("Object refresh failed: %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("refresh should bypass cache, hits = %d", hits.Load())
	}
}

func TestClient_Departments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"departments":[{"departmentId":11,"displayName":"European Paintings"}]}`))
	}))
	defer server.Close()

	depts, err := testClient(server.URL).Departments(context.Background(), false)
	if err != nil {
		t.Fatalf("Departments failed: %v", err)
	}
	if len(depts) != 1 || depts[0].ID != 11 || depts[0].DisplayName != "European Paintings" {
		t.Errorf("departments = %+v", depts)
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient(nil, Options{})
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
	c = NewClient(nil, Options{BaseURL: "http://localhost:1234/v1/"})
	if c.BaseURL() != "http://localhost:1234/v1" {
		t.Errorf("trailing slash not trimmed: %q", c.BaseURL())
	}
}

func testClient(serverURL string) *Client {
	return NewClient(cache.NewNullCache(), Options{BaseURL: serverURL})
}
