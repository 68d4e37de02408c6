package dom

import (
	"golang.org/x/net/html"

	"github.com/vango-dev/vrange/pkg/vdom"
)

// Range is a span of children inside a container node.
type Range struct {
	container  *html.Node
	start, end int

	// node is the content placed by the last ReplaceContent.
	node *html.Node
}

// End returns the container and the offset right after the span.
func (r *Range) End() (vdom.LiveNode, int) {
	parent, _, end := r.bounds()
	return parent, end
}

// Node returns the surrounded node, or nil.
func (r *Range) Node() vdom.LiveNode {
	if r.node == nil {
		return nil
	}
	return r.node
}

// Container returns the node the range currently lives in.
func (r *Range) Container() *html.Node {
	parent, _, _ := r.bounds()
	return parent
}

// bounds resolves the live container and offsets. A range holding an
// attached node follows that node; otherwise the stored offsets are used,
// clamped to the container's child count.
func (r *Range) bounds() (*html.Node, int, int) {
	if r.node != nil && r.node.Parent != nil {
		i := indexOf(r.node)
		return r.node.Parent, i, i + 1
	}
	count := 0
	for c := r.container.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	start, end := min(r.start, count), min(r.end, count)
	return r.container, start, end
}
