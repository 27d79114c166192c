package ui

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"jiractl/internal/theme"
)

const (
	listIndent    = "  "
	quotePrefix   = "│ "
	ruleWidth     = 40
	bulletMarker  = "• "
	codeIndent    = "  "
	headingMarker = "#"
)

// jiraLinkPattern matches the Jira wiki link markup [text|url]
var jiraLinkPattern = regexp.MustCompile(`\[([^|\]]+)\|([^\]]+)\]`)

// rewriteJiraLinks turns [text|url] into "text (_url_)" so the URL is
// kept readable once rendered as markdown.
func rewriteJiraLinks(description string) string {
	return jiraLinkPattern.ReplaceAllString(description, "$1 (_${2}_)")
}

// MarkdownRenderer renders markdown as styled terminal text
type MarkdownRenderer struct {
	markdown goldmark.Markdown
}

// NewMarkdownRenderer creates a new MarkdownRenderer
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough),
		),
	}
}

// Render parses a ticket description and renders it for the terminal.
// Jira link markup is rewritten before parsing.
func (m *MarkdownRenderer) Render(description string) string {
	source := []byte(rewriteJiraLinks(description))
	doc := m.markdown.Parser().Parse(text.NewReader(source))

	r := &terminalRenderer{source: source}
	r.push()
	// The walker never returns an error.
	_ = ast.Walk(doc, r.walk)

	return strings.TrimRight(r.pop(), "\n")
}

// terminalRenderer walks a goldmark AST. Inline and block containers
// render into their own buffer, which is styled and flushed into the
// parent buffer when the node is left.
type terminalRenderer struct {
	buffers []*strings.Builder
	source  []byte
}

func (r *terminalRenderer) push() {
	r.buffers = append(r.buffers, &strings.Builder{})
}

func (r *terminalRenderer) pop() string {
	last := r.buffers[len(r.buffers)-1]
	r.buffers = r.buffers[:len(r.buffers)-1]
	return last.String()
}

func (r *terminalRenderer) write(s string) {
	r.buffers[len(r.buffers)-1].WriteString(s)
}

func (r *terminalRenderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n.Kind() {
	case ast.KindHeading:
		return r.handleHeading(n.(*ast.Heading), entering)
	case ast.KindParagraph:
		return r.handleParagraph(n, entering)
	case ast.KindTextBlock:
		if !entering {
			r.write("\n")
		}
	case ast.KindText:
		return r.handleText(n.(*ast.Text), entering)
	case ast.KindString:
		if entering {
			r.write(string(n.(*ast.String).Value))
		}
	case ast.KindEmphasis:
		return r.handleEmphasis(n.(*ast.Emphasis), entering)
	case extast.KindStrikethrough:
		return r.handleInline(theme.StrikethroughStyle, entering)
	case ast.KindCodeSpan:
		return r.handleCodeSpan(n, entering)
	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		return r.handleCodeBlock(n, entering)
	case ast.KindLink:
		return r.handleLink(n.(*ast.Link), entering)
	case ast.KindAutoLink:
		if entering {
			r.write(theme.LinkStyle.Render(string(n.(*ast.AutoLink).URL(r.source))))
		}
	case ast.KindImage:
		return r.handleImage(n.(*ast.Image), entering)
	case ast.KindList:
		return r.handleList(n.(*ast.List), entering)
	case ast.KindListItem:
		return r.handleListItem(n.(*ast.ListItem), entering)
	case ast.KindBlockquote:
		return r.handleBlockquote(entering)
	case ast.KindThematicBreak:
		if entering {
			r.write(theme.MutedStyle.Render(strings.Repeat("─", ruleWidth)) + "\n\n")
		}
	case ast.KindHTMLBlock:
		if entering {
			r.writeLines(n.Lines())
			r.write("\n")
		}
	case ast.KindRawHTML:
		if entering {
			r.writeLines(n.(*ast.RawHTML).Segments)
		}
	}
	return ast.WalkContinue, nil
}

func (r *terminalRenderer) handleHeading(n *ast.Heading, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.push()
		return ast.WalkContinue, nil
	}

	title := strings.Repeat(headingMarker, n.Level) + " " + r.pop()
	r.write(theme.HeadingStyle.Render(title) + "\n\n")
	return ast.WalkContinue, nil
}

func (r *terminalRenderer) handleParagraph(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		return ast.WalkContinue, nil
	}

	r.write("\n")
	// Paragraphs inside a list item are separated by a single line break
	if _, inItem := n.Parent().(*ast.ListItem); !inItem {
		r.write("\n")
	}
	return ast.WalkContinue, nil
}

func (r *terminalRenderer) handleText(n *ast.Text, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	r.write(string(n.Segment.Value(r.source)))
	if n.SoftLineBreak() || n.HardLineBreak() {
		r.write("\n")
	}
	return ast.WalkContinue, nil
}

func (r *terminalRenderer) handleEmphasis(n *ast.Emphasis, entering bool) (ast.WalkStatus, error) {
	if n.Level == 2 {
		return r.handleInline(theme.StrongStyle, entering)
	}
	return r.handleInline(theme.EmphasisStyle, entering)
}

// handleInline buffers the children of an inline node and renders them with style
func (r *terminalRenderer) handleInline(style lipgloss.Style, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.push()
		return ast.WalkContinue, nil
	}

	r.write(renderLines(style, r.pop()))
	return ast.WalkContinue, nil
}

func (r *terminalRenderer) handleCodeSpan(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	var code strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if textNode, ok := c.(*ast.Text); ok {
			code.Write(textNode.Segment.Value(r.source))
		}
	}
	r.write(theme.CodeStyle.Render(code.String()))
	return ast.WalkSkipChildren, nil
}

func (r *terminalRenderer) handleCodeBlock(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code := strings.TrimRight(string(line.Value(r.source)), "\n")
		r.write(codeIndent + theme.CodeStyle.Render(code) + "\n")
	}
	r.write("\n")
	return ast.WalkSkipChildren, nil
}

func (r *terminalRenderer) handleLink(n *ast.Link, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.push()
		return ast.WalkContinue, nil
	}

	label := r.pop()
	destination := string(n.Destination)
	if label == "" || label == destination {
		r.write(theme.LinkStyle.Render(destination))
		return ast.WalkContinue, nil
	}
	r.write(label + " (" + theme.LinkStyle.Render(destination) + ")")
	return ast.WalkContinue, nil
}

func (r *terminalRenderer) handleImage(n *ast.Image, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.push()
		return ast.WalkContinue, nil
	}

	alt := r.pop()
	r.write("[" + alt + "] (" + theme.LinkStyle.Render(string(n.Destination)) + ")")
	return ast.WalkContinue, nil
}

func (r *terminalRenderer) handleList(n *ast.List, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.push()
		return ast.WalkContinue, nil
	}

	r.write(indentLines(r.pop(), listIndent))
	// Nested lists stay glued to their parent item
	if _, nested := n.Parent().(*ast.ListItem); !nested {
		r.write("\n")
	}
	return ast.WalkContinue, nil
}

func (r *terminalRenderer) handleListItem(n *ast.ListItem, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.push()
		return ast.WalkContinue, nil
	}

	content := strings.TrimRight(r.pop(), "\n")
	marker := bulletMarker
	if list, ok := n.Parent().(*ast.List); ok && list.IsOrdered() {
		marker = strconv.Itoa(list.Start+itemIndex(n)) + ". "
	}

	continuation := strings.Repeat(" ", lipgloss.Width(marker))
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if i == 0 {
			r.write(marker + line + "\n")
			continue
		}
		if line == "" {
			r.write("\n")
			continue
		}
		r.write(continuation + line + "\n")
	}
	return ast.WalkContinue, nil
}

func (r *terminalRenderer) handleBlockquote(entering bool) (ast.WalkStatus, error) {
	if entering {
		r.push()
		return ast.WalkContinue, nil
	}

	content := strings.TrimRight(r.pop(), "\n")
	for _, line := range strings.Split(content, "\n") {
		r.write(theme.QuoteStyle.Render(quotePrefix+line) + "\n")
	}
	r.write("\n")
	return ast.WalkContinue, nil
}

func (r *terminalRenderer) writeLines(lines *text.Segments) {
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		r.write(string(line.Value(r.source)))
	}
}

// itemIndex returns the position of a list item among its siblings
func itemIndex(n ast.Node) int {
	index := 0
	for sibling := n.PreviousSibling(); sibling != nil; sibling = sibling.PreviousSibling() {
		index++
	}
	return index
}

// renderLines styles each line on its own, so lipgloss does not pad
// multi-line strings into a block
func renderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// indentLines prefixes every non-empty line
func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
