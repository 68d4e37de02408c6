package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/vrange/pkg/vdom"
)

// Stats counts surface operations since the document was created.
type Stats struct {
	Elements     int // elements created
	Texts        int // text nodes created
	Replacements int // ReplaceContent calls
	Listeners    int // listeners registered
}

// Document is a live HTML document implementing vdom.Surface.
type Document struct {
	root      *html.Node
	listeners map[*html.Node]map[string][]vdom.EventHandler
	stats     Stats
}

var _ vdom.Surface = (*Document)(nil)

// New returns an empty document with html, head and body elements.
func New() *Document {
	doc, err := Parse(strings.NewReader(""))
	if err != nil {
		// html.Parse only fails on reader errors.
		panic(err)
	}
	return doc
}

// Parse builds a document from HTML source.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{
		root:      root,
		listeners: make(map[*html.Node]map[string][]vdom.EventHandler),
	}, nil
}

// ParseString is Parse for a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Body returns the body element.
func (d *Document) Body() *html.Node {
	return find(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	})
}

// GetElementByID returns the first element whose id attribute is id.
func (d *Document) GetElementByID(id string) *html.Node {
	return find(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && Attr(n, "id") == id
	})
}

// ElementsByTag returns all elements with the given tag in document order.
func (d *Document) ElementsByTag(tag string) []*html.Node {
	var out []*html.Node
	walk(d.root, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
	})
	return out
}

// Stats returns the operation counters.
func (d *Document) Stats() Stats {
	return d.stats
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) vdom.LiveNode {
	d.stats.Elements++
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// CreateText creates a detached text node.
func (d *Document) CreateText(content string) vdom.LiveNode {
	d.stats.Texts++
	return &html.Node{Type: html.TextNode, Data: content}
}

// SetAttribute sets or replaces an attribute on an element.
func (d *Document) SetAttribute(n vdom.LiveNode, name, value string) {
	node := mustNode(n)
	for i := range node.Attr {
		if node.Attr[i].Namespace == "" && node.Attr[i].Key == name {
			node.Attr[i].Val = value
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: name, Val: value})
}

// AddEventListener registers h for event on n.
func (d *Document) AddEventListener(n vdom.LiveNode, event string, h vdom.EventHandler) {
	node := mustNode(n)
	byType := d.listeners[node]
	if byType == nil {
		byType = make(map[string][]vdom.EventHandler)
		d.listeners[node] = byType
	}
	byType[event] = append(byType[event], h)
	d.stats.Listeners++
}

// Listeners returns how many handlers are registered for event on n.
func (d *Document) Listeners(n *html.Node, event string) int {
	return len(d.listeners[n][event])
}

// CreatePosition returns a range over children [start, end) of container.
func (d *Document) CreatePosition(container vdom.LiveNode, start, end int) vdom.Position {
	if start > end {
		start, end = end, start
	}
	return &Range{container: mustNode(container), start: start, end: end}
}

// ReplaceContent removes the children inside p, inserts n where they were
// and narrows p to n. Listeners of removed subtrees are dropped.
func (d *Document) ReplaceContent(p vdom.Position, n vdom.LiveNode) {
	r, ok := p.(*Range)
	if !ok {
		panic(fmt.Sprintf("dom: foreign position %T", p))
	}
	node := mustNode(n)
	parent, start, end := r.bounds()

	removed := make([]*html.Node, 0, end-start)
	child := childAt(parent, start)
	for i := start; i < end && child != nil; i++ {
		removed = append(removed, child)
		child = child.NextSibling
	}
	for _, old := range removed {
		parent.RemoveChild(old)
		walk(old, func(x *html.Node) { delete(d.listeners, x) })
	}

	if node.Parent != nil {
		node.Parent.RemoveChild(node)
	}
	parent.InsertBefore(node, childAt(parent, start))

	r.container = parent
	r.start, r.end = start, start+1
	r.node = node
	d.stats.Replacements++
}

// ChildCount returns the number of children of n.
func (d *Document) ChildCount(n vdom.LiveNode) int {
	count := 0
	for c := mustNode(n).FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

// OuterHTML serializes n including its own tag.
func OuterHTML(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML serializes the children of n.
func InnerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

// TextContent concatenates all text below n.
func TextContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(x *html.Node) {
		if x.Type == html.TextNode {
			b.WriteString(x.Data)
		}
	})
	return b.String()
}

// Attr returns the value of the named attribute, or "".
func Attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val
		}
	}
	return ""
}

// Children returns the children of n as a slice.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

func mustNode(n vdom.LiveNode) *html.Node {
	node, ok := n.(*html.Node)
	if !ok || node == nil {
		panic(fmt.Sprintf("dom: foreign live node %T", n))
	}
	return node
}

func childAt(parent *html.Node, i int) *html.Node {
	c := parent.FirstChild
	for ; c != nil && i > 0; i-- {
		c = c.NextSibling
	}
	return c
}

func indexOf(n *html.Node) int {
	i := 0
	for c := n.PrevSibling; c != nil; c = c.PrevSibling {
		i++
	}
	return i
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}
