package vtest

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/vango-dev/vrange/pkg/dom"
	"github.com/vango-dev/vrange/pkg/vdom"
)

// Harness is a tree mounted into its own document.
type Harness struct {
	t        testing.TB
	Doc      *dom.Document
	Host     *html.Node
	Root     *vdom.VNode
	Renderer *vdom.Renderer
}

// Mount renders root into the body of a new document.
func Mount(t testing.TB, root *vdom.VNode, opts ...vdom.RenderOption) *Harness {
	t.Helper()
	doc := dom.New()
	host := doc.Body()
	r := vdom.Render(doc, root, host, opts...)
	return &Harness{t: t, Doc: doc, Host: host, Root: root, Renderer: r}
}

// HTML returns the mounted markup.
func (h *Harness) HTML() string {
	return dom.InnerHTML(h.Host)
}

// ByID returns the element with the given id or fails the test.
func (h *Harness) ByID(id string) *html.Node {
	h.t.Helper()
	n := h.Doc.GetElementByID(id)
	if n == nil {
		h.t.Fatalf("no element with id %q in:\n%s", id, truncate(h.HTML(), 500))
	}
	return n
}

// Click dispatches a click on the element with the given id and returns the
// number of handlers that ran.
func (h *Harness) Click(id string) int {
	h.t.Helper()
	return h.Doc.Click(h.ByID(id))
}

// ExpectContains asserts that the mounted markup contains expected.
func (h *Harness) ExpectContains(expected string) {
	h.t.Helper()
	if got := h.HTML(); !strings.Contains(got, expected) {
		h.t.Errorf("expected mounted output to contain %q, got:\n%s", expected, truncate(got, 500))
	}
}

// ExpectText asserts the text content of the element with the given id.
func (h *Harness) ExpectText(id, want string) {
	h.t.Helper()
	if got := dom.TextContent(h.ByID(id)); got != want {
		h.t.Errorf("text of #%s = %q, want %q", id, got, want)
	}
}

// RenderToString mounts node into a fresh document and returns the markup.
//
// Example:
//
//	html := vtest.RenderToString(MyComponent())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	doc := dom.New()
	vdom.Render(doc, node, doc.Body())
	return dom.InnerHTML(doc.Body())
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, comp.Render(), "Welcome Admin")
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t *testing.T, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
