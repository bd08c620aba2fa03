package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/dgallion1/docsite/internal/navigation"
)

const (
	titleWeight       = 5
	descriptionWeight = 2
	maxBodyHits       = 10
	snippetRadius     = 80
)

// Source renders the HTML body of a navigation entry.
type Source interface {
	RenderEntry(entry navigation.DocEntry) ([]byte, error)
}

// Result is one search match.
type Result struct {
	Entry    navigation.DocEntry `json:"entry"`
	Category string              `json:"category"`
	Score    int                 `json:"score"`
	Snippet  string              `json:"snippet,omitempty"`
}

type document struct {
	entry    navigation.DocEntry
	category string
	title    string
	desc     string
	body     string // plain text
	lower    string // lower-cased body
}

// Index is an in-memory full-text index over the documentation. It is
// immutable once built.
type Index struct {
	docs []document
}

// Build renders every entry through src and indexes its text. Pages that
// fail to render are indexed by title and description only.
func Build(table navigation.Table, src Source, log *slog.Logger) *Index {
	idx := &Index{}
	for _, c := range table {
		for _, e := range c.Items {
			d := document{
				entry:    e,
				category: c.Name,
				title:    strings.ToLower(e.Name),
				desc:     strings.ToLower(e.Description),
			}
			if body, err := src.RenderEntry(e); err != nil {
				log.Warn("search: page not indexed", "href", e.Href, "error", err)
			} else if text, err := PlainText(string(body)); err != nil {
				log.Warn("search: page text not extracted", "href", e.Href, "error", err)
			} else {
				d.body = text
				d.lower = strings.ToLower(text)
			}
			idx.docs = append(idx.docs, d)
		}
	}
	return idx
}

// Len returns the number of indexed pages.
func (idx *Index) Len() int {
	return len(idx.docs)
}

// Query returns pages matching every whitespace-separated term of q,
// best first. Ties keep navigation order. limit <= 0 means no limit.
func (idx *Index) Query(q string, limit int) []Result {
	terms := strings.Fields(strings.ToLower(q))
	if len(terms) == 0 {
		return nil
	}

	var results []Result
	for _, d := range idx.docs {
		score := 0
		matched := true
		for _, term := range terms {
			s := 0
			if strings.Contains(d.title, term) {
				s += titleWeight
			}
			if strings.Contains(d.desc, term) {
				s += descriptionWeight
			}
			s += min(strings.Count(d.lower, term), maxBodyHits)
			if s == 0 {
				matched = false
				break
			}
			score += s
		}
		if !matched {
			continue
		}
		results = append(results, Result{
			Entry:    d.entry,
			Category: d.category,
			Score:    score,
			Snippet:  snippet(d, terms),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// snippet returns body text around the first term occurrence, falling
// back to the description.
func snippet(d document, terms []string) string {
	for _, term := range terms {
		i := strings.Index(d.lower, term)
		if i < 0 {
			continue
		}
		start := max(i-snippetRadius, 0)
		end := min(i+len(term)+snippetRadius, len(d.body))
		// Lower-casing can change byte lengths; fall back to the
		// description rather than slicing mid-rune.
		if len(d.lower) != len(d.body) {
			break
		}
		s := strings.ReplaceAll(d.body[start:end], "\n", " ")
		s = strings.ToValidUTF8(s, "")
		if start > 0 {
			s = "…" + s
		}
		if end < len(d.body) {
			s += "…"
		}
		return s
	}
	return d.entry.Description
}
