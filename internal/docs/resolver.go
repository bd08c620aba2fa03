package docs

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/dgallion1/docsite/internal/doctree"
	"github.com/dgallion1/docsite/internal/indexer"
	"github.com/dgallion1/docsite/internal/navigation"
	"github.com/dgallion1/docsite/internal/parser"
	"github.com/dgallion1/docsite/internal/render"
)

// ErrNotFound is returned when no navigation entry matches a path.
var ErrNotFound = errors.New("page not found")

// outlineDepth limits the on-page table of contents to h2 and h3.
const outlineDepth = 3

// Page is the view model for a documentation page.
type Page struct {
	Title       string
	Description string
	Item        navigation.DocEntry
	Category    navigation.Category
	Body        template.HTML
	Links       navigation.Table
	Prev        *navigation.DocEntry
	Next        *navigation.DocEntry
	CurrentPath string
	Outline     []doctree.Heading
	Footer      bool
}

// Resolver maps category/name pairs to rendered pages. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	root     string
	table    navigation.Table
	renderer render.Renderer
	parser   *parser.MarkdownParser
}

// NewResolver creates a resolver that reads Markdown from root.
func NewResolver(root string, table navigation.Table, r render.Renderer) *Resolver {
	return &Resolver{
		root:     root,
		table:    table,
		renderer: r,
		parser:   &parser.MarkdownParser{},
	}
}

// LoadTable builds the navigation from a YAML manifest when navFile is
// set, otherwise by scanning root.
func LoadTable(root, navFile string) (navigation.Table, error) {
	if navFile != "" {
		return navigation.LoadFile(navFile)
	}
	return indexer.Scan(root)
}

// Table returns the navigation table.
func (r *Resolver) Table() navigation.Table {
	return r.table
}

// Resolve renders the page for category/name.
func (r *Resolver) Resolve(category, name string) (*Page, error) {
	pathName := category + "/" + name
	item, cat, ok := r.table.Lookup(pathName)
	if !ok {
		return nil, fmt.Errorf("%s: %w", pathName, ErrNotFound)
	}

	src, err := r.source(item)
	if err != nil {
		return nil, err
	}
	body, err := r.renderer.Render(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pathName, err)
	}
	tree, err := r.parser.Parse(bytes.NewReader(src), item.Href)
	if err != nil {
		return nil, fmt.Errorf("%s: outline: %w", pathName, err)
	}

	prev, next := r.table.Neighbors(pathName)
	return &Page{
		Title:       item.Name,
		Description: item.Description,
		Item:        item,
		Category:    cat,
		Body:        template.HTML(body),
		Links:       r.table,
		Prev:        prev,
		Next:        next,
		CurrentPath: pathName,
		Outline:     doctree.Outline(tree, outlineDepth),
	}, nil
}

// Tree parses the page for category/name into a heading tree titled with
// the entry name.
func (r *Resolver) Tree(category, name string) (*doctree.DocTree, error) {
	pathName := category + "/" + name
	item, _, ok := r.table.Lookup(pathName)
	if !ok {
		return nil, fmt.Errorf("%s: %w", pathName, ErrNotFound)
	}
	src, err := r.source(item)
	if err != nil {
		return nil, err
	}
	tree, err := r.parser.Parse(bytes.NewReader(src), item.Href)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pathName, err)
	}
	tree.Title = item.Name
	return tree, nil
}

// RenderEntry renders the Markdown body of entry to HTML.
func (r *Resolver) RenderEntry(entry navigation.DocEntry) ([]byte, error) {
	src, err := r.source(entry)
	if err != nil {
		return nil, err
	}
	return r.renderer.Render(src)
}

func (r *Resolver) source(entry navigation.DocEntry) ([]byte, error) {
	path := filepath.Join(r.root, filepath.FromSlash(entry.Href)+".md")
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", entry.Href, err)
	}
	return src, nil
}
