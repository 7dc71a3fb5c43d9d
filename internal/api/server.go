// Package api serves the gallery over HTTP as JSON.
//
// Routes:
//
//	GET  /healthz
//	GET  /api/featured
//	GET  /api/search?q=            (starts a session, returns X-Session-ID)
//	GET  /api/search/more          (requires X-Session-ID)
//	GET  /api/objects/{id}
//	GET  /api/artists?filter=
//	GET  /api/artists/works?name=  (starts or reuses a session)
//	POST /api/artists/reload
//
// Errors are returned as {"code": ..., "message": ...} with the status
// derived from the error code.
package api

import (
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/metgallery/pkg/gallery"
)

// SessionHeader carries the browsing session ID.
const SessionHeader = "X-Session-ID"

// Options configures a [Server].
type Options struct {
	Source     gallery.Source         // collection API, usually *met.Client
	Logger     *log.Logger            // nil discards output
	Resolver   gallery.ResolverOptions
	Catalog    gallery.CatalogOptions
	PageSize   int           // default gallery.DefaultPageSize
	SessionTTL time.Duration // default DefaultSessionTTL
}

// Server holds the gallery state shared by all requests: one artist catalog
// and a set of per-client browsing sessions.
type Server struct {
	src      gallery.Source
	coll     *gallery.Collection
	resolver *gallery.Resolver
	catalog  *gallery.CatalogBuilder
	sessions *sessionStore
	logger   *log.Logger
}

// New creates a Server.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	coll := gallery.NewCollection(opts.Source, logger)
	resolver := gallery.NewResolver(coll, opts.Resolver)

	s := &Server{
		src:      opts.Source,
		coll:     coll,
		resolver: resolver,
		catalog:  gallery.NewCatalogBuilder(coll, gallery.NewCatalog(), opts.Catalog),
		logger:   logger,
	}
	s.sessions = newSessionStore(opts.SessionTTL, func() *gallery.Session {
		return gallery.NewSession(coll, resolver, opts.PageSize)
	})
	return s
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/featured", s.featured)
		r.Get("/search", s.search)
		r.Get("/search/more", s.searchMore)
		r.Get("/objects/{id}", s.object)
		r.Route("/artists", func(r chi.Router) {
			r.Get("/", s.artists)
			r.Get("/works", s.artistWorks)
			r.Post("/reload", s.reloadArtists)
		})
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
