package navigation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DocEntry is one documentation page in the navigation.
type DocEntry struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Href        string `yaml:"href" json:"href"` // category/slug, no extension
}

// Category groups entries shown together in the menu.
type Category struct {
	Name  string     `yaml:"name" json:"name"`
	Items []DocEntry `yaml:"items" json:"items"`
}

// Table is the ordered navigation used for menus and pagination.
type Table []Category

type manifest struct {
	Categories Table `yaml:"categories"`
}

// ErrDuplicateHref is returned by Validate when two entries share an href.
var ErrDuplicateHref = errors.New("duplicate href")

// Flatten returns every entry in menu order.
func (t Table) Flatten() []DocEntry {
	var out []DocEntry
	for _, c := range t {
		out = append(out, c.Items...)
	}
	return out
}

// Lookup finds the first entry whose href equals href, along with the
// category that owns it.
func (t Table) Lookup(href string) (DocEntry, Category, bool) {
	for _, c := range t {
		for _, item := range c.Items {
			if item.Href == href {
				return item, c, true
			}
		}
	}
	return DocEntry{}, Category{}, false
}

// Neighbors returns the entries before and after href in flattened order.
// Either is nil at the boundaries, both are nil when href is unknown.
func (t Table) Neighbors(href string) (prev, next *DocEntry) {
	flat := t.Flatten()
	idx := -1
	for i, e := range flat {
		if e.Href == href {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}
	if idx > 0 {
		p := flat[idx-1]
		prev = &p
	}
	if idx < len(flat)-1 {
		n := flat[idx+1]
		next = &n
	}
	return prev, next
}

// Len returns the number of entries across all categories.
func (t Table) Len() int {
	n := 0
	for _, c := range t {
		n += len(c.Items)
	}
	return n
}

// Validate checks that every entry has an href and that hrefs are unique.
func (t Table) Validate() error {
	seen := make(map[string]string)
	for _, c := range t {
		for _, item := range c.Items {
			if item.Href == "" {
				return fmt.Errorf("category %q: entry %q has no href", c.Name, item.Name)
			}
			if strings.HasPrefix(item.Href, "/") {
				return fmt.Errorf("entry %q: href %q must be relative", item.Name, item.Href)
			}
			if prev, ok := seen[item.Href]; ok {
				return fmt.Errorf("%w: %q used by %q and %q", ErrDuplicateHref, item.Href, prev, item.Name)
			}
			seen[item.Href] = item.Name
		}
	}
	return nil
}

// Parse decodes a YAML navigation manifest.
func Parse(data []byte) (Table, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if err := m.Categories.Validate(); err != nil {
		return nil, err
	}
	return m.Categories, nil
}

// LoadFile reads and validates a YAML navigation manifest.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
