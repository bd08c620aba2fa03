package indexer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dgallion1/docsite/internal/indexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParseMeta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    indexer.Meta
	}{
		{
			name:    "heading and first paragraph",
			content: "# Block\n\nBlocks group routes.\n\nMore text.",
			want:    indexer.Meta{Title: "Block", Description: "Blocks group routes."},
		},
		{
			name:    "no heading defaults to Untitled",
			content: "Just text here.\n",
			want:    indexer.Meta{Title: "Untitled", Description: "Just text here."},
		},
		{
			name:    "desc comment wins over paragraph",
			content: "# Routing\n\nFirst paragraph.\n<!-- desc: Routing overview -->\n",
			want:    indexer.Meta{Title: "Routing", Description: "Routing overview"},
		},
		{
			name:    "empty desc comment still wins",
			content: "# Routing\n<!-- desc: -->\nFirst paragraph.\n",
			want:    indexer.Meta{Title: "Routing", Description: ""},
		},
		{
			name:    "subheadings and comments skipped",
			content: "## Intro\n<!-- note -->\n\n  Indented line.  \n",
			want:    indexer.Meta{Title: "Untitled", Description: "Indented line."},
		},
		{
			name:    "empty heading defaults to Untitled",
			content: "#   \nBody.",
			want:    indexer.Meta{Title: "Untitled", Description: "Body."},
		},
		{
			name:    "crlf line endings",
			content: "# Title\r\n\r\nBody text.\r\n",
			want:    indexer.Meta{Title: "Title", Description: "Body text."},
		},
		{
			name:    "empty file",
			content: "",
			want:    indexer.Meta{Title: "Untitled"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, indexer.ParseMeta(tt.content))
		})
	}
}

func TestScan(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeDoc(t, root, "getting-started/quick-start.md", "# Quick Start\n\nStart here.")
	writeDoc(t, root, "guides/routing.md", "# Routing\n<!-- desc: Routes -->\n")
	writeDoc(t, root, "guides/block.md", "No heading.")
	writeDoc(t, root, "guides/notes.txt", "ignored")
	writeDoc(t, root, "README.md", "# Root file")

	table, err := indexer.Scan(root)
	require.NoError(t, err)
	require.Len(t, table, 2)

	assert.Equal(t, "Getting-started", table[0].Name)
	require.Len(t, table[0].Items, 1)
	assert.Equal(t, "Quick Start", table[0].Items[0].Name)
	assert.Equal(t, "Start here.", table[0].Items[0].Description)
	assert.Equal(t, "getting-started/quick-start", table[0].Items[0].Href)

	assert.Equal(t, "Guides", table[1].Name)
	require.Len(t, table[1].Items, 2)
	assert.Equal(t, "guides/block", table[1].Items[0].Href)
	assert.Equal(t, "Untitled", table[1].Items[0].Name)
	assert.Equal(t, "guides/routing", table[1].Items[1].Href)
	assert.Equal(t, "Routes", table[1].Items[1].Description)
}

func TestScan_NestedKeepsFirstSegment(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeDoc(t, root, "api/v1/integration.md", "# Integration")

	table, err := indexer.Scan(root)
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, "Api", table[0].Name)
	assert.Equal(t, "api/v1/integration", table[0].Items[0].Href)
}

func TestScan_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := indexer.Scan(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
