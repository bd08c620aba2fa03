package doctree

// DocTree is the root of a parsed document.
type DocTree struct {
	Title    string     // Document title (from the navigation entry or filename)
	Children []*DocNode // Top-level sections
}

// DocNode is a recursive section in the document tree.
type DocNode struct {
	Title    string     // Section heading (empty for leaf text)
	Level    int        // Heading level, 0 for leaf text
	Anchor   string     // HTML id of the rendered heading
	Text     string     // Text content of this node (may be empty for container nodes)
	Children []*DocNode // Subsections
}

// Heading is one line of a page outline.
type Heading struct {
	Title  string
	Level  int
	Anchor string
}

// Outline flattens the heading hierarchy in document order. Headings
// deeper than maxDepth are omitted; maxDepth <= 0 keeps all of them.
func Outline(tree *DocTree, maxDepth int) []Heading {
	if tree == nil {
		return nil
	}
	var out []Heading
	var walk func(nodes []*DocNode)
	walk = func(nodes []*DocNode) {
		for _, n := range nodes {
			if n.Level > 0 && (maxDepth <= 0 || n.Level <= maxDepth) {
				out = append(out, Heading{Title: n.Title, Level: n.Level, Anchor: n.Anchor})
			}
			walk(n.Children)
		}
	}
	walk(tree.Children)
	return out
}
