package site_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgallion1/docsite/internal/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViews_Render(t *testing.T) {
	t.Parallel()

	v, err := site.NewViews()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = v.Render(&buf, site.PageIndex, map[string]any{
		"Title":       "Home <b>",
		"Description": "",
		"SiteTitle":   "Docs",
		"Year":        2026,
		"Footer":      true,
		"Links":       nil,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<title>Home &lt;b&gt;</title>")
	assert.Contains(t, buf.String(), "&copy; 2026 Docs")

	assert.Error(t, v.Render(&buf, "nope", nil))
}

func TestStatic(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.StripPrefix("/static/", site.Static()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/static/style.css")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
}
