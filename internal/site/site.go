// Package site holds the embedded HTML views and static assets.
package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Views.Render.
const (
	PageIndex = "index"
	PageDocs  = "docs"
)

// Views renders the site's pages. Each page is parsed together with the
// shared layout.
type Views struct {
	pages map[string]*template.Template
}

// NewViews parses the embedded templates.
func NewViews() (*Views, error) {
	v := &Views{pages: make(map[string]*template.Template)}
	for _, name := range []string{PageIndex, PageDocs} {
		t, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s view: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

// Render executes the named page with data.
func (v *Views) Render(w io.Writer, name string, data any) error {
	t, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("render %s view: %w", name, err)
	}
	return nil
}

// Static serves the embedded assets. Mount it with the URL prefix stripped.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
