package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docsite/internal/doctree"
	"github.com/fumiama/go-docx"
)

// Run sizes are in half-points.
const (
	titleSize = "44"
	bodySize  = "22"
)

var headingSizes = map[int]string{
	1: "36",
	2: "32",
	3: "28",
	4: "26",
}

// WriteDocx writes tree as a Word document: the tree title first, then
// each heading as a bold paragraph sized by level and each text block as
// its own paragraph.
func WriteDocx(w io.Writer, tree *doctree.DocTree) error {
	doc := docx.New().WithDefaultTheme()

	if tree.Title != "" {
		doc.AddParagraph().AddText(tree.Title).Bold().Size(titleSize)
	}

	var walk func(nodes []*doctree.DocNode)
	walk = func(nodes []*doctree.DocNode) {
		for _, n := range nodes {
			if n.Level > 0 && n.Title != "" {
				size, ok := headingSizes[n.Level]
				if !ok {
					size = "24"
				}
				doc.AddParagraph().AddText(n.Title).Bold().Size(size)
			}
			for _, para := range paragraphs(n.Text) {
				doc.AddParagraph().AddText(para).Size(bodySize)
			}
			walk(n.Children)
		}
	}
	walk(tree.Children)

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

// paragraphs splits text on blank lines and joins the remaining line
// breaks with spaces.
func paragraphs(text string) []string {
	var out []string
	for _, block := range strings.Split(text, "\n\n") {
		if p := strings.Join(strings.Fields(block), " "); p != "" {
			out = append(out, p)
		}
	}
	return out
}
