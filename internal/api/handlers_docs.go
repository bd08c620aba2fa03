package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgallion1/docsite/internal/docs"
	"github.com/dgallion1/docsite/internal/navigation"
	"github.com/dgallion1/docsite/internal/site"
	"github.com/go-chi/chi/v5"
)

type docsView struct {
	*docs.Page
	SiteTitle string
	Year      int
}

type homeView struct {
	Title       string
	Description string
	SiteTitle   string
	Year        int
	Footer      bool
	Links       navigation.Table
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := s.views.Render(&buf, site.PageIndex, homeView{
		Title:     s.cfg.SiteTitle,
		SiteTitle: s.cfg.SiteTitle,
		Year:      time.Now().Year(),
		Footer:    true,
		Links:     s.resolver.Table(),
	})
	if err != nil {
		s.log.Error("render home", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, r, buf.Bytes())
}

func (s *Server) handleDocsIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/docs/"+s.cfg.DefaultEntry, http.StatusFound)
}

// handleDoc renders a documentation page. Every failure, whether an unknown
// path, a missing file or a render error, is answered with the same 404.
func (s *Server) handleDoc(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	name := chi.URLParam(r, "name")

	page, err := s.resolver.Resolve(category, name)
	if err != nil {
		s.log.Debug("doc not resolved", "category", category, "name", name, "error", err)
		notFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := s.views.Render(&buf, site.PageDocs, docsView{
		Page:      page,
		SiteTitle: s.cfg.SiteTitle,
		Year:      time.Now().Year(),
	}); err != nil {
		s.log.Warn("doc not rendered", "path", page.CurrentPath, "error", err)
		notFound(w, r)
		return
	}
	writeHTML(w, r, buf.Bytes())
}

// writeHTML writes body with a content-hash ETag and answers conditional
// requests with 304.
func writeHTML(w http.ResponseWriter, r *http.Request, body []byte) {
	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}
