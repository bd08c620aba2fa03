package api

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"

	"github.com/dgallion1/docsite/internal/export"
	"github.com/go-chi/chi/v5"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func (s *Server) handleExportDocx(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	name := chi.URLParam(r, "name")

	tree, err := s.resolver.Tree(category, name)
	if err != nil {
		s.log.Debug("export not resolved", "category", category, "name", name, "error", err)
		notFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteDocx(&buf, tree); err != nil {
		s.log.Warn("export failed", "category", category, "name", name, "error", err)
		notFound(w, r)
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": name + ".docx",
	}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}
