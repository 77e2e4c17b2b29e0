// Package markdown extracts the structure the rest of the application works
// with from raw Markdown: YAML front matter, the heading outline, fenced code
// blocks, links and interview questions. Parsing is done once at ingestion
// time; lint rules and API consumers operate on the extracted structure.
package markdown

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"corpus/pkg/domain"
)

// FrontMatter holds the recognized keys of a document's YAML front matter.
// Unknown keys are ignored.
type FrontMatter struct {
	Title  string   `yaml:"title"`
	Kind   string   `yaml:"kind"`
	Topics []string `yaml:"topics"`
	Tags   []string `yaml:"tags"`

	// Present is true when the source started with a front matter block,
	// even an empty one.
	Present bool `yaml:"-"`
}

// Question is an interview question found in a document, together with the
// section heading it appeared under.
type Question struct {
	Text  string
	Topic string
}

// Document is the parse result for a single Markdown source.
type Document struct {
	FrontMatter FrontMatter

	// Title is the front matter title, falling back to the first H1. Empty
	// when neither exists; callers fall back to the file name.
	Title string

	Headings   []domain.Heading
	CodeBlocks []domain.CodeBlock
	Links      []domain.Link
	Questions  []Question
}

// Outline converts the extracted structure into the domain outline stored
// alongside the document.
func (d *Document) Outline() domain.Outline {
	return domain.Outline{
		Headings:   d.Headings,
		CodeBlocks: d.CodeBlocks,
		Links:      d.Links,
	}
}

const frontMatterDelimiter = "---"

// SplitFrontMatter splits source into its front matter block and body. The
// returned bodyLine is the 1-based line the body starts on in the original
// source, used to keep finding line numbers accurate. When no front matter is
// present, fm is nil and bodyLine is 1.
func SplitFrontMatter(source []byte) (fm, body []byte, bodyLine int) {
	lines := bytes.SplitAfter(source, []byte("\n"))
	if len(lines) == 0 || strings.TrimRight(string(lines[0]), "\r\n") != frontMatterDelimiter {
		return nil, source, 1
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(string(lines[i]), "\r\n") == frontMatterDelimiter {
			fm = bytes.Join(lines[1:i], nil)
			body = bytes.Join(lines[i+1:], nil)

			return fm, body, i + 2
		}
	}

	// unterminated front matter: treat the whole source as body
	return nil, source, 1
}

// Anchor derives a GitHub-style anchor slug from heading text: lower-cased,
// spaces replaced with hyphens, everything but letters, digits and hyphens
// dropped.
func Anchor(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r == ' ' || r == '-':
			b.WriteRune('-')
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case r == '_':
			b.WriteRune('_')
		case r > 127 && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			// non-ASCII letters and digits survive slugging, punctuation
			// such as em-dashes and curly quotes does not
			b.WriteRune(r)
		}
	}

	return b.String()
}

// externalSchemes are link prefixes that always denote external targets.
var externalSchemes = []string{"http://", "https://", "mailto:", "ftp://", "tel:"} //nolint: gochecknoglobals

// IsExternalTarget reports whether the link target points outside the corpus.
func IsExternalTarget(target string) bool {
	lower := strings.ToLower(target)
	for _, scheme := range externalSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	// protocol-relative URLs
	return strings.HasPrefix(target, "//")
}

// Parse parses Markdown source into a Document. It never fails on malformed
// Markdown (goldmark is lenient); only invalid front matter YAML is an error.
func Parse(source []byte) (*Document, error) {
	fmBytes, body, bodyLine := SplitFrontMatter(source)

	doc := &Document{}
	if fmBytes != nil {
		doc.FrontMatter.Present = true
		if err := yaml.Unmarshal(fmBytes, &doc.FrontMatter); err != nil {
			return nil, fmt.Errorf("could not parse front matter: %w", err)
		}
	}

	lines := newLineIndex(body, bodyLine)

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var currentTopic string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			headingText := string(node.Text(body))
			line := 0
			if node.Lines().Len() > 0 {
				line = lines.lineOf(node.Lines().At(0).Start)
			}
			doc.Headings = append(doc.Headings, domain.Heading{
				Level:  node.Level,
				Text:   headingText,
				Anchor: Anchor(headingText),
				Line:   line,
			})
			if node.Level == 2 { //nolint: mnd
				currentTopic = headingText
			}
			if strings.HasSuffix(strings.TrimSpace(headingText), "?") {
				doc.Questions = append(doc.Questions, Question{
					Text:  strings.TrimSpace(headingText),
					Topic: currentTopic,
				})
			}

		case *ast.FencedCodeBlock:
			lang := ""
			if node.Info != nil {
				lang = string(node.Language(body))
			}
			var content bytes.Buffer
			for i := 0; i < node.Lines().Len(); i++ {
				seg := node.Lines().At(i)
				content.Write(seg.Value(body))
			}
			line := 0
			if node.Lines().Len() > 0 {
				// the opening fence sits one line above the first content line
				line = lines.lineOf(node.Lines().At(0).Start) - 1
			} else if node.Info != nil {
				line = lines.lineOf(node.Info.Segment.Start)
			}
			doc.CodeBlocks = append(doc.CodeBlocks, domain.CodeBlock{
				Language: lang,
				Content:  content.String(),
				Line:     line,
			})

		case *ast.Link:
			doc.Links = append(doc.Links, linkAt(string(node.Destination), node, body, lines))

		case *ast.Image:
			doc.Links = append(doc.Links, linkAt(string(node.Destination), node, body, lines))

		case *ast.AutoLink:
			doc.Links = append(doc.Links, domain.Link{
				Target:   string(node.URL(body)),
				Internal: false,
				Line:     lineOfInline(node, body, lines),
			})
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk markdown ast: %w", err)
	}

	// list items ending with a question mark are interview questions too
	doc.Questions = append(doc.Questions, listQuestions(root, body)...)

	doc.Title = doc.FrontMatter.Title
	if doc.Title == "" {
		for _, h := range doc.Headings {
			if h.Level == 1 {
				doc.Title = h.Text

				break
			}
		}
	}

	return doc, nil
}

// linkAt builds a domain.Link for an inline node with the given destination.
func linkAt(target string, n ast.Node, source []byte, lines *lineIndex) domain.Link {
	return domain.Link{
		Target:   target,
		Internal: !IsExternalTarget(target),
		Line:     lineOfInline(n, source, lines),
	}
}

// lineOfInline locates an inline node by the segment of its first text
// descendant. Inline nodes carry no line information themselves.
func lineOfInline(n ast.Node, source []byte, lines *lineIndex) int {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			return lines.lineOf(t.Segment.Start)
		}
		if l := lineOfInline(c, source, lines); l > 0 {
			return l
		}
	}
	// fall back to the enclosing block
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == ast.TypeBlock && p.Lines().Len() > 0 {
			return lines.lineOf(p.Lines().At(0).Start)
		}
	}

	return 0
}

// listQuestions walks list items in document order and collects those whose
// text reads like a question. The topic is the closest H2 above the list.
func listQuestions(root ast.Node, source []byte) []Question {
	var out []Question
	var currentTopic string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 2 { //nolint: mnd
				currentTopic = string(node.Text(source))
			}
		case *ast.ListItem:
			itemText := strings.TrimSpace(string(node.Text(source)))
			if strings.HasSuffix(itemText, "?") {
				out = append(out, Question{Text: itemText, Topic: currentTopic})
			}

			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return out
}

// lineIndex maps byte offsets in the parsed body back to 1-based line numbers
// in the original source, accounting for a stripped front matter block.
type lineIndex struct {
	newlines []int
	offset   int
}

func newLineIndex(body []byte, bodyLine int) *lineIndex {
	idx := &lineIndex{offset: bodyLine}
	for i, b := range body {
		if b == '\n' {
			idx.newlines = append(idx.newlines, i)
		}
	}

	return idx
}

// lineOf returns the 1-based original line number for a byte offset in the body.
func (l *lineIndex) lineOf(offset int) int {
	n := sort.SearchInts(l.newlines, offset)

	return l.offset + n
}
