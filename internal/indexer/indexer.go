package indexer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/docsite/internal/navigation"
)

const (
	untitled   = "Untitled"
	descMarker = "<!-- desc:"
)

// Meta holds the metadata extracted from a Markdown file.
type Meta struct {
	Title       string
	Description string
}

// ParseMeta extracts the title and description from Markdown source.
//
// The title is the first "# " line. The description comes from a
// "<!-- desc: ... -->" line when present (even if empty), otherwise from
// the first line that is not blank, a heading, or a comment.
func ParseMeta(content string) Meta {
	lines := strings.Split(content, "\n")

	m := Meta{Title: untitled}
	for _, l := range lines {
		if strings.HasPrefix(l, "# ") {
			if t := strings.TrimSpace(strings.Replace(l, "# ", "", 1)); t != "" {
				m.Title = t
			}
			break
		}
	}

	for _, l := range lines {
		if strings.HasPrefix(l, descMarker) {
			d := strings.Replace(l, descMarker, "", 1)
			d = strings.Replace(d, "-->", "", 1)
			m.Description = strings.TrimSpace(d)
			return m
		}
	}

	for _, l := range lines {
		if strings.TrimSpace(l) == "" || strings.HasPrefix(l, "#") || strings.HasPrefix(l, "<!--") {
			continue
		}
		m.Description = strings.TrimSpace(l)
		break
	}
	return m
}

// Scan walks root for Markdown files and groups them by their first path
// segment. Categories appear in the order they are first seen; entries keep
// walk order, which is lexical.
func Scan(root string) (navigation.Table, error) {
	var table navigation.Table
	index := make(map[string]int)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		href := strings.TrimSuffix(filepath.ToSlash(rel), ".md")
		category, _, ok := strings.Cut(href, "/")
		if !ok {
			// Root-level files have no category and cannot be routed.
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", rel, err)
		}
		meta := ParseMeta(string(raw))

		i, seen := index[category]
		if !seen {
			i = len(table)
			index[category] = i
			table = append(table, navigation.Category{Name: capitalize(category)})
		}
		table[i].Items = append(table[i].Items, navigation.DocEntry{
			Name:        meta.Title,
			Description: meta.Description,
			Href:        href,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
