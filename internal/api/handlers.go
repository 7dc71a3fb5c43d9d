package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperr "github.com/matzehuels/metgallery/pkg/errors"
	"github.com/matzehuels/metgallery/pkg/gallery"
	"github.com/matzehuels/metgallery/pkg/integrations/met"
)

type errorResponse struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
}

type pageResponse struct {
	SessionID string        `json:"sessionId"`
	Title     string        `json:"title"`
	Page      int           `json:"page"`
	Total     int           `json:"total"`
	HasMore   bool          `json:"hasMore"`
	Artworks  []*met.Object `json:"artworks"`
}

type worksResponse struct {
	pageResponse
	Candidates int `json:"candidates"`
	Checked    int `json:"checked"`
}

type artistsResponse struct {
	Total   int      `json:"total"`
	Artists []string `json:"artists"`
}

func newPageResponse(id string, p *gallery.Page) pageResponse {
	return pageResponse{
		SessionID: id,
		Title:     p.Title,
		Page:      p.Index,
		Total:     p.Total,
		HasMore:   p.HasMore,
		Artworks:  p.Artworks,
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) featured(w http.ResponseWriter, r *http.Request) {
	artworks := gallery.Featured(r.Context(), s.coll)
	writeJSON(w, http.StatusOK, map[string]any{"artworks": nonNil(artworks)})
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query, err := apperr.ValidateQuery(r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	id, sess := s.sessions.getOrCreate(r.Header.Get(SessionHeader))
	w.Header().Set(SessionHeader, id)

	page, err := sess.Search(r.Context(), query)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newPageResponse(id, page))
}

func (s *Server) searchMore(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(SessionHeader)
	sess, ok := s.sessions.get(id)
	if !ok {
		s.writeError(w, apperr.New(apperr.ErrCodeSessionNotFound, "unknown or expired session, start a new search"))
		return
	}
	w.Header().Set(SessionHeader, id)

	page, err := sess.LoadMore(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newPageResponse(id, page))
}

func (s *Server) object(w http.ResponseWriter, r *http.Request) {
	id, err := apperr.ValidateObjectID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	obj, err := s.src.Object(r.Context(), id, false)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obj)
}

func (s *Server) artists(w http.ResponseWriter, r *http.Request) {
	catalog, err := s.catalog.Load(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	names := catalog.Filter(r.URL.Query().Get("filter"))
	writeJSON(w, http.StatusOK, artistsResponse{Total: catalog.Len(), Artists: names})
}

func (s *Server) reloadArtists(w http.ResponseWriter, r *http.Request) {
	catalog, err := s.catalog.Reload(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, artistsResponse{Total: catalog.Len(), Artists: catalog.Names()})
}

func (s *Server) artistWorks(w http.ResponseWriter, r *http.Request) {
	name, err := apperr.ValidateQuery(r.URL.Query().Get("name"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	id, sess := s.sessions.getOrCreate(r.Header.Get(SessionHeader))
	w.Header().Set(SessionHeader, id)

	page, res, err := sess.ShowArtist(r.Context(), name)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := worksResponse{Candidates: res.Candidates, Checked: res.Checked}
	if page != nil {
		resp.pageResponse = newPageResponse(id, page)
	} else {
		resp.pageResponse = pageResponse{SessionID: id, Title: name, Artworks: []*met.Object{}}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	err = gallery.AppError(err)

	code := apperr.GetCode(err)
	if code == "" {
		// Context errors: the client went away or the deadline passed.
		code = apperr.ErrCodeInternal
	}
	status := apperr.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Warn("request failed", "code", code, "err", err)
	}

	msg := apperr.UserMessage(err)
	var e *apperr.Error
	if !errors.As(err, &e) {
		msg = "request cancelled"
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func nonNil(objs []*met.Object) []*met.Object {
	if objs == nil {
		return []*met.Object{}
	}
	return objs
}
